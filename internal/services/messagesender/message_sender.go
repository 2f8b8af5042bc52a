package messagesender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// PlatformFailureCode is the code returned when the Send API call failed.
	PlatformFailureCode = -1

	// DefaultSendTimeout bounds a single Send API call.
	DefaultSendTimeout = 10 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	// MessagingTypeResponse marks a message as a reply to a user message.
	MessagingTypeResponse = "RESPONSE"
)

// SendRequest is the body posted to the Send API.
type SendRequest struct {
	MessagingType string    `json:"messaging_type"`
	Recipient     Recipient `json:"recipient"`
	Message       Message   `json:"message"`
}

// Recipient addresses a message to a page-scoped user ID.
type Recipient struct {
	ID string `json:"id"`
}

// Message is the text payload of an outbound message.
type Message struct {
	Text string `json:"text"`
}

// GraphAPIError is the error object returned by the Graph API.
type GraphAPIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
	SubCode    int    `json:"error_subcode"`
	FBTraceID  string `json:"fbtrace_id"`
}

func (e *GraphAPIError) Error() string {
	return fmt.Sprintf("graph api returned status code %d: %s (type=%s code=%d fbtrace_id=%s)",
		e.StatusCode, e.Message, e.Type, e.Code, e.FBTraceID)
}

// Sender posts text replies to the Messenger Send API on behalf of a page.
type Sender struct {
	client      *http.Client
	endpoint    string
	accessToken string
}

// NewSender creates a new Sender. baseURL is the versioned Graph API root, e.g. https://graph.facebook.com/v19.0.
// A nil client gets a default client with DefaultSendTimeout.
func NewSender(client *http.Client, baseURL, accessToken string) *Sender {
	if client == nil {
		client = &http.Client{
			Timeout: DefaultSendTimeout,
		}
	}
	return &Sender{
		client:      client,
		endpoint:    strings.TrimRight(baseURL, "/") + "/me/messages",
		accessToken: accessToken,
	}
}

// Send delivers text to recipientID. Every failure is a richerrors.Error with PlatformFailureCode.
func (s *Sender) Send(ctx context.Context, recipientID, text string) error {
	body, err := json.Marshal(SendRequest{
		MessagingType: MessagingTypeResponse,
		Recipient:     Recipient{ID: recipientID},
		Message:       Message{Text: text},
	})
	if err != nil {
		return richerrors.Error{
			Code: PlatformFailureCode,
			Err:  fmt.Errorf("failed to marshal send request: %w", err),
		}
	}

	reqURL, err := url.Parse(s.endpoint)
	if err != nil {
		return richerrors.Error{
			Code: PlatformFailureCode,
			Err:  fmt.Errorf("invalid URL: %w", err),
		}
	}
	query := reqURL.Query()
	query.Set("access_token", s.accessToken)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return richerrors.Error{
			Code: PlatformFailureCode,
			Err:  fmt.Errorf("failed to create send request: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: PlatformFailureCode,
			Err:  fmt.Errorf("failed to POST to send api: %w", redactToken(err)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: PlatformFailureCode,
			Err:  parseGraphError(resp.StatusCode, respBody),
		}
	}
	return nil
}

func parseGraphError(statusCode int, body []byte) error {
	var envelope struct {
		Error *GraphAPIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.StatusCode = statusCode
		return envelope.Error
	}
	return fmt.Errorf("send api returned status code %d: %s", statusCode, string(body))
}

// redactToken strips the request URL from transport errors so the page access token is never logged.
func redactToken(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s send api: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
