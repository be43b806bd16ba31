package entity

import "unicode/utf8"

// InboundMessage is one push delivery produced by the remote service.
type InboundMessage struct {
	MessageID string            `json:"message_id,omitempty"`
	Title     *string           `json:"title,omitempty"`
	Body      *string           `json:"body,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}

// TitleOr returns the title, or fallback when the message has none.
func (m *InboundMessage) TitleOr(fallback string) string {
	if m == nil || m.Title == nil || *m.Title == "" {
		return fallback
	}

	return *m.Title
}

// BodyOr returns the body, or fallback when the message has none.
func (m *InboundMessage) BodyOr(fallback string) string {
	if m == nil || m.Body == nil || *m.Body == "" {
		return fallback
	}

	return *m.Body
}

// HasPayload reports whether the message carries key/value data.
func (m *InboundMessage) HasPayload() bool {
	return m != nil && len(m.Data) > 0
}

// BodyLength counts runes of the body as supplied, zero when absent.
func (m *InboundMessage) BodyLength() int {
	if m == nil || m.Body == nil {
		return 0
	}

	return utf8.RuneCountInString(*m.Body)
}

// Text returns a pointer to s, for building messages with optional fields.
func Text(s string) *string {
	return &s
}
