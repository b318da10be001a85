package handlers

import (
	"reflect"
	"testing"

	api "github.com/OvyFlash/telegram-bot-api"
)

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	chat := &api.Chat{ID: 100}
	actor := &api.User{ID: 1, UserName: "mod"}
	target := &api.User{ID: 2, UserName: "offender"}

	t.Run("reply with text", func(t *testing.T) {
		t.Parallel()
		msg := &api.Message{
			Text:     "/tdban spamlink 2h",
			Entities: []api.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
			ReplyToMessage: &api.Message{
				MessageID: 555,
				From:      target,
				Text:      "buy crypto now",
			},
		}
		req := buildRequest(msg, chat, actor, "en")
		if req.ChatID != 100 || req.Actor != actor {
			t.Errorf("request envelope = %+v", req)
		}
		if req.Target != target || req.TargetMessageID != 555 || req.TargetText != "buy crypto now" {
			t.Errorf("target fields = %+v", req)
		}
		if !reflect.DeepEqual(req.Args, []string{"spamlink", "2h"}) {
			t.Errorf("args = %v, want [spamlink 2h]", req.Args)
		}
	})

	t.Run("caption fallback", func(t *testing.T) {
		t.Parallel()
		msg := &api.Message{
			Text:     "/dmute spam",
			Entities: []api.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
			ReplyToMessage: &api.Message{
				MessageID: 556,
				From:      target,
				Caption:   "image spam",
			},
		}
		req := buildRequest(msg, chat, actor, "en")
		if req.TargetText != "image spam" {
			t.Errorf("target text = %q, want caption fallback", req.TargetText)
		}
	})

	t.Run("no reply leaves target empty", func(t *testing.T) {
		t.Parallel()
		msg := &api.Message{
			Text:     "/ban spam",
			Entities: []api.MessageEntity{{Type: "bot_command", Offset: 0, Length: 4}},
		}
		req := buildRequest(msg, chat, actor, "en")
		if req.Target != nil || req.TargetMessageID != 0 {
			t.Errorf("target fields = %+v, want empty", req)
		}
	})
}
