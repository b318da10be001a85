package moderation

import (
	"testing"
	"time"

	"github.com/iamwavecut/modbot/internal/event"
)

func TestNoticeCleanupDeletesOnceDue(t *testing.T) {
	platform := &fakePlatform{}
	RegisterNoticeCleanup()
	stop := event.RunWorker()
	defer stop()

	due := time.Now().Add(30 * time.Millisecond)
	scheduleNoticeCleanup(platform, 100, 777, due)

	if got := platform.callsOf("delete"); len(got) != 0 {
		t.Fatalf("notice deleted before it was due: %+v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := platform.callsOf("delete"); len(got) == 1 {
			if got[0].chatID != 100 || got[0].messageID != 777 {
				t.Fatalf("deleted the wrong message: %+v", got)
			}
			if time.Now().Before(due) {
				t.Fatal("notice deleted ahead of its due time")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("notice was never deleted")
}
