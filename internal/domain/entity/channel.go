package entity

// Importance levels understood by the local renderer. ImportanceMax is the highest available.
type Importance int

const (
	ImportanceMin     Importance = 1
	ImportanceLow     Importance = 2
	ImportanceDefault Importance = 3
	ImportanceHigh    Importance = 4
	ImportanceMax     Importance = 5
)

// NotificationChannel is the rendering configuration every local notification references.
type NotificationChannel struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Importance       Importance `json:"importance"`
	PlaySound        bool       `json:"play_sound"`
	SoundName        string     `json:"sound_name"`
	Vibrate          bool       `json:"vibrate"`
	VibrationPattern []int64    `json:"vibration_pattern,omitempty"`
	EnableLights     bool       `json:"enable_lights"`
}

// LocalNotification is a single notification handed to the renderer.
type LocalNotification struct {
	ChannelID   string            `json:"channel_id"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	PlaySound   bool              `json:"play_sound"`
	SoundName   string            `json:"sound_name"`
	Importance  Importance        `json:"importance"`
	Priority    Importance        `json:"priority"`
	Vibrate     bool              `json:"vibrate"`
	VibrationMs int               `json:"vibration_ms"`
	Actions     []string          `json:"actions,omitempty"`
	InvokeApp   bool              `json:"invoke_app"`
	UserInfo    map[string]string `json:"user_info,omitempty"`
}

// RendererHandlers are the callbacks the local renderer invokes.
type RendererHandlers struct {
	OnNotification      func(n LocalNotification)
	OnAction            func(n LocalNotification, action string)
	OnRegistrationError func(err error)
}
