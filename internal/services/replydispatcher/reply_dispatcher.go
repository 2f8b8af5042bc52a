package replydispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/DIMO-Network/messenger-autoresponder/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MessageSender delivers a single text message to a recipient.
type MessageSender interface {
	Send(ctx context.Context, recipientID, text string) error
}

// Dispatcher sends replies in the background. A reply's outcome is only visible in logs and metrics.
type Dispatcher struct {
	sender  MessageSender
	timeout time.Duration
	logger  *zerolog.Logger
	wg      sync.WaitGroup
}

// New creates a Dispatcher. Each send is bounded by timeout.
func New(sender MessageSender, timeout time.Duration, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// Reply starts sending text to recipientID and returns immediately.
// Only the logger attached to ctx is carried into the send. ctx itself may be recycled once the caller returns.
func (d *Dispatcher) Reply(ctx context.Context, recipientID, text string) {
	deliveryID := uuid.New().String()
	reqLogger := *zerolog.Ctx(ctx)
	sendCtx, cancel := context.WithTimeout(reqLogger.WithContext(context.Background()), d.timeout)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		start := time.Now()
		err := d.sender.Send(sendCtx, recipientID, text)
		metrics.ReplyDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.Replies.WithLabelValues(metrics.StatusFailed).Inc()
			d.logger.Error().Err(err).
				Str("delivery_id", deliveryID).
				Str("recipient_id", recipientID).
				Msg("Unable to send message")
			return
		}
		metrics.Replies.WithLabelValues(metrics.StatusSuccess).Inc()
		d.logger.Debug().
			Str("delivery_id", deliveryID).
			Str("recipient_id", recipientID).
			Msg("Reply sent")
	}()
}

// Wait blocks until every started reply has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
