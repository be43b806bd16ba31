package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"pushclient/internal/domain/constants"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath             = "."
	defaultAppVersion       = "0.0.0-dev"
	defaultTelemetryTimeout = 5 * time.Second
	defaultQueueSize        = 64
	defaultQRCodeSize       = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		// AppVersion is the static version tag attached to every telemetry event
		AppVersion string `json:"appVersion" yaml:"appVersion"`
		Debug      bool   `json:"debug" yaml:"debug"`
		Log        Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Channel configuration for the default local rendering channel
	Channel *ChannelConfig `json:"channel" yaml:"channel"`

	// Push configuration for the in-process push host
	Push *PushConfig `json:"push" yaml:"push"`

	// Telemetry configuration for best-effort analytics
	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	// PubSub configuration for telemetry transport and inbound pushes
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for sending test pushes
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for the device token code
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ChannelConfig defines the default notification channel.
// The ID must match the identifier declared in the platform manifest.
type ChannelConfig struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// LaunchMessage describes the notification that launched the process from terminated state
type LaunchMessage struct {
	Title string            `json:"title" yaml:"title"`
	Body  string            `json:"body" yaml:"body"`
	Data  map[string]string `json:"data" yaml:"data"`
}

// PushConfig defines how the in-process push host behaves
type PushConfig struct {
	// Permission outcome reported by the host: authorized, provisional, denied, undetermined or error
	Permission string `json:"permission" yaml:"permission" validate:"omitempty,oneof=authorized provisional denied undetermined error"`

	// Static device token; a random one is issued when empty
	Token string `json:"token" yaml:"token"`

	// Lifecycle state at process start
	InitialState string `json:"initialState" yaml:"initialState" validate:"omitempty,oneof=foreground background terminated"`

	// Notification that launched the process, if any
	LaunchMessage *LaunchMessage `json:"launchMessage" yaml:"launchMessage"`

	// Capacity of the inbound delivery queue
	QueueSize int `json:"queueSize" yaml:"queueSize" validate:"gte=0"`

	// Verify Pub/Sub push JWTs on the push endpoint
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// TelemetryConfig defines analytics emission settings
type TelemetryConfig struct {
	// Per-event transport timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// User properties set once at startup
	UserProperties map[string]string `json:"userProperties" yaml:"userProperties"`
}

// PubSubConfig defines Pub/Sub configuration
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Telemetry topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Inbound push subscription ID (for google provider, optional)
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// Local HTTP endpoint receiving telemetry (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PUSH_INITIALSTATE -> push.initialState (not push.initialstate)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Env.AppVersion) == "" {
		c.Env.AppVersion = defaultAppVersion
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}

	if c.Channel == nil {
		c.Channel = &ChannelConfig{}
	}
	if c.Channel.ID == "" {
		c.Channel.ID = constants.DefaultChannelID
	}
	if c.Channel.Name == "" {
		c.Channel.Name = constants.DefaultChannelName
	}
	if c.Channel.Description == "" {
		c.Channel.Description = constants.DefaultChannelDescription
	}

	if c.Push == nil {
		c.Push = &PushConfig{}
	}
	if c.Push.Permission == "" {
		c.Push.Permission = "authorized"
	}
	if c.Push.InitialState == "" {
		c.Push.InitialState = "foreground"
	}
	if c.Push.QueueSize == 0 {
		c.Push.QueueSize = defaultQueueSize
	}

	if c.Telemetry == nil {
		c.Telemetry = &TelemetryConfig{}
	}
	if c.Telemetry.Timeout <= 0 {
		c.Telemetry.Timeout = defaultTelemetryTimeout
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "M"
	}
}

// Validate checks enumerated and ranged fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
