package telegram

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"jasper/internal/assistant"
	pkgLog "jasper/pkg/log"
	pkgResponse "jasper/pkg/response"
	pkgTelegram "jasper/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and answers in the
// background; a search plus summaries easily outlasts Telegram's webhook
// timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefix, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		// gin's recovery does not reach this goroutine.
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "%s: panic while processing message: %v\n%s", LogPrefix, r, debug.Stack())
				_ = h.bot.SendMessage(msg.Chat.ID, msgFail)
			}
		}()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: processMessage failed: %v", LogPrefix, err)
			_ = h.bot.SendMessage(msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, msgStart)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, msgHelp)
	case "/status":
		st := h.uc.IndexStatus(ctx)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Index: %s (%d%%)", st.Status, st.Percent))
	}

	if err := h.bot.SendMessage(msg.Chat.ID, msgBusy); err != nil {
		h.l.Warnf(ctx, "%s: failed to send ack message: %v", LogPrefix, err)
	}

	ctx = pkgLog.WithRequestID(ctx, fmt.Sprintf("tg-%d-%d", msg.Chat.ID, msg.MessageID))
	resp, err := h.uc.Query(ctx, assistant.QueryInput{Text: text})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(msg.Chat.ID, formatResponse(resp))
}
