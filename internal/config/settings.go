package config

import "time"

// Defaults applied by ApplyDefaults when a setting is left unset.
const (
	DefaultPort             = 3000
	DefaultMonPort          = 8888
	DefaultLogLevel         = "info"
	DefaultServiceName      = "messenger-autoresponder"
	DefaultRulesFilePath    = "rules.json"
	DefaultGraphAPIURL      = "https://graph.facebook.com/v19.0"
	DefaultSendTimeout      = 10 * time.Second
	DefaultMessageDedupeTTL = 10 * time.Minute
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// PageAccessToken authorizes calls to the Send API.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// VerifyToken is echoed by the platform during the webhook subscription handshake.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// SyncPassword is the shared secret the dashboard sends with rule updates.
	SyncPassword string `env:"SYNC_PASSWORD"`

	RulesFilePath    string        `env:"RULES_FILE_PATH"`
	GraphAPIURL      string        `env:"GRAPH_API_URL"`
	SendTimeout      time.Duration `env:"SEND_TIMEOUT"`
	MessageDedupeTTL time.Duration `env:"MESSAGE_DEDUPE_TTL"`
}

// ApplyDefaults fills in every unset field with its default.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = DefaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = DefaultServiceName
	}
	if s.RulesFilePath == "" {
		s.RulesFilePath = DefaultRulesFilePath
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = DefaultGraphAPIURL
	}
	if s.SendTimeout <= 0 {
		s.SendTimeout = DefaultSendTimeout
	}
	if s.MessageDedupeTTL <= 0 {
		s.MessageDedupeTTL = DefaultMessageDedupeTTL
	}
}

// MissingSecrets returns the env names of secrets that are empty.
func (s *Settings) MissingSecrets() []string {
	var missing []string
	if s.PageAccessToken == "" {
		missing = append(missing, "PAGE_ACCESS_TOKEN")
	}
	if s.VerifyToken == "" {
		missing = append(missing, "VERIFY_TOKEN")
	}
	if s.SyncPassword == "" {
		missing = append(missing, "SYNC_PASSWORD")
	}
	return missing
}
