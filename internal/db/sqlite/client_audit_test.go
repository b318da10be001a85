package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/iamwavecut/modbot/internal/db"
)

func TestAuditRecordsRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, err := NewSQLiteClient(ctx, t.TempDir(), "test.db")
	if err != nil {
		t.Fatalf("new sqlite client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	base := time.Now().Add(-time.Hour)
	for i, action := range []string{db.ActionMute, db.ActionMute, db.ActionBan} {
		record := &db.AuditRecord{
			ChatID:      -100500,
			UserID:      777,
			Action:      action,
			MessageText: "offending text",
			Reason:      "spam",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := client.AddAuditRecord(ctx, record); err != nil {
			t.Fatalf("add audit record: %v", err)
		}
		if record.ID == "" {
			t.Fatal("expected an ID to be assigned")
		}
	}

	records, err := client.GetAuditRecords(ctx, -100500, 777, 2)
	if err != nil {
		t.Fatalf("get audit records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected the limit to apply, got %d records", len(records))
	}
	if records[0].Action != db.ActionBan {
		t.Errorf("expected newest record first, got %s", records[0].Action)
	}

	other, err := client.GetAuditRecords(ctx, -1, 1, 10)
	if err != nil {
		t.Fatalf("get audit records for other pair: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no records for another chat/user, got %d", len(other))
	}
}
