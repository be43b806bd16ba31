// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Default channel attributes. The identifier must match the platform manifest declaration.
const (
	DefaultChannelID          = "default_notification_channel"
	DefaultChannelName        = "General Notifications"
	DefaultChannelDescription = "Notifications for general app updates"
)

// Fallback copy used when an inbound message carries no notification content.
const (
	DefaultNotificationTitle = "New Notification"
	DefaultNotificationBody  = "You have a new message"
)

// Fixed content of the self-test notification.
const (
	TestNotificationTitle = "🧪 Test Notification"
	TestNotificationBody  = "If you see this, notifications are working!"
)

// TokenPlaceholder is shown while no device token is available.
const TokenPlaceholder = "Getting token..."

// Telemetry event names
const (
	EventTokenReceived           = "fcm_token_received"
	EventTokenFailed             = "fcm_token_failed"
	EventTokenCopied             = "fcm_token_copied"
	EventPermissionResolved      = "notification_permission_resolved"
	EventPermissionFailed        = "notification_permission_failed"
	EventNotificationReceived    = "notification_received"
	EventNotificationRenderError = "notification_render_failed"
	EventForegroundReceived      = "foreground_notification_received"
	EventBackgroundReceived      = "background_notification_received"
	EventNotificationOpened      = "notification_opened"
	EventNotificationsCleared    = "notifications_cleared"
	EventTestLocalNotification   = "test_local_notification"
	EventChannelRegistered       = "notification_channel_registered"
	EventChannelFailed           = "notification_channel_failed"
)

// Origins reported with EventNotificationOpened
const (
	OpenedFromBackground = "background"
	OpenedFromQuit       = "quit"
)

// Telemetry enrichment keys
const (
	PropTimestamp  = "timestamp"
	PropAppVersion = "app_version"
)
