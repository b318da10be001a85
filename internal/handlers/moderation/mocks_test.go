package moderation

import (
	"context"
	"sync"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/iamwavecut/modbot/internal/adapters/llm"
	"github.com/iamwavecut/modbot/internal/db"
)

type platformCall struct {
	op        string
	chatID    int64
	userID    int64
	messageID int
	untilUnix int64
	revoke    bool
	text      string
}

type fakePlatform struct {
	mu    sync.Mutex
	calls []platformCall

	restrictErr error
	banErr      error
	member      *api.ChatMember
	memberErr   error
}

func (p *fakePlatform) record(c platformCall) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, c)
}

func (p *fakePlatform) callsOf(op string) []platformCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []platformCall
	for _, c := range p.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (p *fakePlatform) SendMessage(_ context.Context, chatID int64, text string) (int, error) {
	p.record(platformCall{op: "send", chatID: chatID, text: text})
	return 777, nil
}

func (p *fakePlatform) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	p.record(platformCall{op: "delete", chatID: chatID, messageID: messageID})
	return nil
}

func (p *fakePlatform) RestrictMember(_ context.Context, chatID, userID int64, untilUnix int64) error {
	if p.restrictErr != nil {
		return p.restrictErr
	}
	p.record(platformCall{op: "restrict", chatID: chatID, userID: userID, untilUnix: untilUnix})
	return nil
}

func (p *fakePlatform) UnrestrictMember(_ context.Context, chatID, userID int64) error {
	p.record(platformCall{op: "unrestrict", chatID: chatID, userID: userID})
	return nil
}

func (p *fakePlatform) BanMember(_ context.Context, chatID, userID int64, untilUnix int64, revokeMessages bool) error {
	if p.banErr != nil {
		return p.banErr
	}
	p.record(platformCall{op: "ban", chatID: chatID, userID: userID, untilUnix: untilUnix, revoke: revokeMessages})
	return nil
}

func (p *fakePlatform) UnbanMember(_ context.Context, chatID, userID int64) error {
	p.record(platformCall{op: "unban", chatID: chatID, userID: userID})
	return nil
}

func (p *fakePlatform) GetMember(_ context.Context, chatID, userID int64) (*api.ChatMember, error) {
	if p.memberErr != nil {
		return nil, p.memberErr
	}
	if p.member != nil {
		return p.member, nil
	}
	return &api.ChatMember{Status: "member"}, nil
}

type strikeKey struct {
	chatID int64
	userID int64
}

type fakeStore struct {
	mu      sync.Mutex
	strikes map[strikeKey]int
	audits  []*db.AuditRecord
	kv      map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		strikes: map[strikeKey]int{},
		kv:      map[string]string{},
	}
}

func (s *fakeStore) IncrementStrike(_ context.Context, chatID, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strikeKey{chatID, userID}
	s.strikes[key]++
	return s.strikes[key], nil
}

func (s *fakeStore) GetStrikes(_ context.Context, chatID, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strikes[strikeKey{chatID, userID}], nil
}

func (s *fakeStore) ResetStrikes(_ context.Context, chatID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strikes[strikeKey{chatID, userID}] = 0
	return nil
}

func (s *fakeStore) AddAuditRecord(_ context.Context, record *db.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits = append(s.audits, record)
	return nil
}

func (s *fakeStore) SetKV(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
	return nil
}

type fakeAuthorizer struct {
	admin bool
	err   error
}

func (a *fakeAuthorizer) IsAdmin(context.Context, int64, int64) (bool, error) {
	return a.admin, a.err
}

type fakeClassifier struct {
	result llm.ClassificationResult
	err    error
}

func (c *fakeClassifier) Classify(context.Context, string) (llm.ClassificationResult, error) {
	return c.result, c.err
}
