package entity

// PermissionState is the outcome of the one-shot notification permission negotiation.
type PermissionState int

const (
	PermissionUndetermined PermissionState = iota
	PermissionAuthorized
	PermissionProvisional
	PermissionDenied
)

// AuthorizationStatus is the raw result reported by the host platform.
// Values follow the Firebase messaging convention.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = -1
	AuthorizationDenied        AuthorizationStatus = 0
	AuthorizationAuthorized    AuthorizationStatus = 1
	AuthorizationProvisional   AuthorizationStatus = 2
)

// PermissionOptions lists the capabilities requested from the platform.
type PermissionOptions struct {
	Alert        bool
	Badge        bool
	Sound        bool
	Announcement bool
}

// PermissionStateFromStatus maps a platform status into the four-value state.
// Unknown statuses are treated as denied.
func PermissionStateFromStatus(status AuthorizationStatus) PermissionState {
	switch status {
	case AuthorizationNotDetermined:
		return PermissionUndetermined
	case AuthorizationAuthorized:
		return PermissionAuthorized
	case AuthorizationProvisional:
		return PermissionProvisional
	default:
		return PermissionDenied
	}
}

// Enabled reports whether notifications may be delivered in this state.
func (s PermissionState) Enabled() bool {
	return s == PermissionAuthorized || s == PermissionProvisional
}

func (s PermissionState) String() string {
	switch s {
	case PermissionUndetermined:
		return "undetermined"
	case PermissionAuthorized:
		return "authorized"
	case PermissionProvisional:
		return "provisional"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}
