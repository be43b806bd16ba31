// Package entity contains the core business objects of the project.
package entity

// DeviceToken is the opaque delivery identity issued by the remote push service.
type DeviceToken struct {
	Value string `json:"value"`
}

// NewDeviceToken wraps a raw token string.
func NewDeviceToken(value string) DeviceToken {
	return DeviceToken{Value: value}
}

// Len returns the token length, the only token attribute that leaves the device.
func (t DeviceToken) Len() int {
	return len(t.Value)
}

// IsZero reports whether no token has been issued.
func (t DeviceToken) IsZero() bool {
	return t.Value == ""
}
