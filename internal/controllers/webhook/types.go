package webhook

const (
	// ObjectPage is the envelope object for page subscriptions.
	ObjectPage = "page"
	// ModeSubscribe is the hub.mode sent during the verification handshake.
	ModeSubscribe = "subscribe"
	// EventReceived is the acknowledgment body for every accepted delivery.
	EventReceived = "EVENT_RECEIVED"
)

// WebhookEvent is the envelope of a webhook delivery.
// A delivery may batch events from several entries.
type WebhookEvent struct {
	// Object identifies the subscription category, "page" for Messenger.
	Object string `json:"object"`
	// Entry holds one item per page that has events.
	Entry []Entry `json:"entry"`
}

// Entry groups the messaging events of a single page.
type Entry struct {
	// ID is the page ID.
	ID string `json:"id"`
	// Time is the delivery time in epoch milliseconds.
	Time int64 `json:"time"`
	// Messaging holds the messaging events. Only the first one is handled.
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single event sent to the page.
type MessagingEvent struct {
	Sender    Participant `json:"sender"`
	Recipient Participant `json:"recipient"`
	Timestamp int64       `json:"timestamp"`
	// Message is nil for non-message events such as deliveries, reads and postbacks.
	Message *Message `json:"message,omitempty"`
}

// Participant is a page-scoped ID.
type Participant struct {
	ID string `json:"id"`
}

// Message is the message part of a messaging event.
type Message struct {
	// MID is the platform message ID.
	MID string `json:"mid"`
	// Text is empty for attachment-only messages.
	Text string `json:"text"`
	// IsEcho is set on copies of messages the page itself sent.
	IsEcho bool `json:"is_echo,omitempty"`
}
