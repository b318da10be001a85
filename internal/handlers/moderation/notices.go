package moderation

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/event"
)

const noticeCleanupEvent = "moderation_notice_cleanup"

// graceAfterDue keeps a cleanup event alive past its due time so a busy
// worker still gets to it instead of expiring it away.
const graceAfterDue = time.Minute

type noticeCleanup struct {
	*event.Base
	platform  Platform
	chatID    int64
	messageID int
}

var subscribeNoticeCleanupOnce sync.Once

// RegisterNoticeCleanup wires confirmation-notice deletion into the event
// worker. Events only reach the bus once they are due, so the subscriber
// deletes right away.
func RegisterNoticeCleanup() {
	subscribeNoticeCleanupOnce.Do(func() {
		event.Subscribe(noticeCleanupEvent, func(e event.Queueable) {
			nc, ok := e.(*noticeCleanup)
			if !ok {
				e.Drop()
				return
			}
			if err := nc.platform.DeleteMessage(context.Background(), nc.chatID, nc.messageID); err != nil {
				log.WithField("context", "moderation").WithError(err).Warn("cant delete notice")
			}
			e.Process()
		})
	})
}

// scheduleNoticeCleanup enqueues the cleanup when deleteAt arrives rather
// than at call time, so pending cleanups never cycle through the worker.
func scheduleNoticeCleanup(platform Platform, chatID int64, messageID int, deleteAt time.Time) {
	ev := &noticeCleanup{
		Base:      event.CreateBase(noticeCleanupEvent, deleteAt.Add(graceAfterDue)),
		platform:  platform,
		chatID:    chatID,
		messageID: messageID,
	}
	delay := time.Until(deleteAt)
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, func() { event.Bus.NQ(ev) })
}
