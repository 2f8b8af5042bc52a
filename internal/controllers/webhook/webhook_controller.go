package webhook

import (
	"context"
	"errors"

	"github.com/DIMO-Network/messenger-autoresponder/internal/metrics"
	"github.com/DIMO-Network/messenger-autoresponder/internal/rules"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// RuleSource provides the rule set currently used for matching.
type RuleSource interface {
	Rules() rules.RuleSet
}

// Replier sends a reply without blocking the caller.
type Replier interface {
	Reply(ctx context.Context, recipientID, text string)
}

// MessageDeduper reports whether a message ID is being handled for the first time.
type MessageDeduper interface {
	FirstSeen(messageID string) bool
}

// WebhookController receives Messenger webhook deliveries and answers matching messages.
type WebhookController struct {
	rules       RuleSource
	replier     Replier
	deduper     MessageDeduper
	verifyToken string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(ruleSource RuleSource, replier Replier, deduper MessageDeduper, verifyToken string) *WebhookController {
	return &WebhookController{
		rules:       ruleSource,
		replier:     replier,
		deduper:     deduper,
		verifyToken: verifyToken,
	}
}

// VerifyWebhook godoc
// @Summary      Verify the webhook subscription
// @Description  Subscription handshake. Echoes hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured verify token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Must be subscribe"
// @Param        hub.verify_token  query  string  true  "Configured verify token"
// @Param        hub.challenge     query  string  true  "Value to echo back"
// @Success      200  {string}  string  "The challenge value"
// @Failure      403  "Verification failed"
// @Router       /webhook [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if err := validateVerification(mode, token, w.verifyToken); err != nil {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification failed")
		return err
	}
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveEvents godoc
// @Summary      Receive webhook events
// @Description  Receives a batch of page events. The first messaging event of each entry is matched against the active rules and a reply is sent in the background. Always acknowledges page deliveries.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        request  body      WebhookEvent  true  "Webhook delivery"
// @Success      200      {string}  string        "EVENT_RECEIVED"
// @Failure      400      "Invalid request payload"
// @Failure      404      "Not a page subscription"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvents(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         errors.New("body is not valid json"),
			Code:        fiber.StatusBadRequest,
		}
	}
	// The rest of a non-page envelope is never decoded.
	if err := validateObject(gjson.GetBytes(body, "object").String()); err != nil {
		return err
	}

	var event WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	ctx := c.UserContext()
	active := w.rules.Rules()
	for i := range event.Entry {
		outcome := w.handleEntry(ctx, &event.Entry[i], active)
		metrics.InboundMessages.WithLabelValues(outcome).Inc()
	}

	return c.Status(fiber.StatusOK).SendString(EventReceived)
}

// handleEntry processes the first messaging event of an entry and returns its outcome label.
func (w *WebhookController) handleEntry(ctx context.Context, entry *Entry, active rules.RuleSet) string {
	if len(entry.Messaging) == 0 {
		return metrics.OutcomeSkipped
	}
	event := entry.Messaging[0]
	if event.Message == nil || event.Message.Text == "" || event.Sender.ID == "" {
		return metrics.OutcomeSkipped
	}
	if event.Message.IsEcho {
		return metrics.OutcomeEcho
	}

	logger := zerolog.Ctx(ctx).With().
		Str("sender_id", event.Sender.ID).
		Str("mid", event.Message.MID).
		Logger()

	if !w.deduper.FirstSeen(event.Message.MID) {
		logger.Debug().Msg("Skipping redelivered message")
		return metrics.OutcomeDuplicate
	}

	rule, ok := rules.Match(event.Message.Text, active)
	if !ok {
		return metrics.OutcomeUnmatched
	}

	logger.Info().Str("trigger_keyword", rule.Keyword()).Msg("Message matched rule")
	w.replier.Reply(ctx, event.Sender.ID, rule.TextMessage)
	return metrics.OutcomeMatched
}
