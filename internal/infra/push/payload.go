package push

import (
	"encoding/json"
	"maps"

	"pushclient/internal/domain/entity"
	"pushclient/internal/errors"
)

// Payload is the JSON shape of a remote push delivery, as published to the
// inbound topic and posted to the push endpoints.
type Payload struct {
	MessageID    string               `json:"messageId,omitempty"`
	Notification *NotificationPayload `json:"notification,omitempty"`
	Data         map[string]string    `json:"data,omitempty"`
}

// NotificationPayload carries the optional display fields
type NotificationPayload struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// Message converts the payload into an inbound message. The data map is copied.
func (p *Payload) Message() *entity.InboundMessage {
	msg := &entity.InboundMessage{MessageID: p.MessageID}
	if p.Notification != nil {
		msg.Title = p.Notification.Title
		msg.Body = p.Notification.Body
	}
	if len(p.Data) > 0 {
		msg.Data = maps.Clone(p.Data)
	}

	return msg
}

// DecodePayload parses a JSON push payload
func DecodePayload(data []byte) (*entity.InboundMessage, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode push payload")
	}

	return payload.Message(), nil
}

// NewPayload builds the wire payload for a message
func NewPayload(msg *entity.InboundMessage) *Payload {
	payload := &Payload{MessageID: msg.MessageID, Data: msg.Data}
	if msg.Title != nil || msg.Body != nil {
		payload.Notification = &NotificationPayload{Title: msg.Title, Body: msg.Body}
	}

	return payload
}
