package entity

import "time"

// TelemetryEvent is a named, flat, best-effort analytics record.
type TelemetryEvent struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Properties     map[string]any    `json:"properties"`
	UserProperties map[string]string `json:"user_properties,omitempty"`
	CapturedAt     time.Time         `json:"captured_at"`
}

// ScreenView describes a screen transition reported to the analytics backend.
type ScreenView struct {
	ScreenName  string `json:"screen_name"`
	ScreenClass string `json:"screen_class,omitempty"`
}
