package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/samber/lo"
)

type Config struct {
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,default=8080"`
	HealthGRPCPort int    `env:"HEALTH_GRPC_PORT,default=8081"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`

	ConferenceAPIURL string        `env:"CONFERENCE_API_URL,required=true"`
	UserAPIURL       string        `env:"USER_API_URL,required=true"`
	VideoAPIURL      string        `env:"VIDEO_API_URL,required=true"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT,default=5s"`

	JWTSecret string `env:"JWT_SECRET,required=true"`

	SinkBufferSize int           `env:"SINK_BUFFER_SIZE,default=64"`
	SinkTimeout    time.Duration `env:"SINK_TIMEOUT,default=2s"`
	// ShutdownTimeout bounds the graceful stop of the HTTP server.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	InvitationTTL           time.Duration `env:"INVITATION_TTL,default=2m"`
	InvitationSweepInterval time.Duration `env:"INVITATION_SWEEP_INTERVAL,default=30s"`
	HeartbeatInterval       time.Duration `env:"HEARTBEAT_INTERVAL,default=10s"`
	RestartInterval         time.Duration `env:"RESTART_INTERVAL,default=1s"`

	// BadgerFilepath empty keeps the message history in memory.
	BadgerFilepath  string `env:"BADGER_FILEPATH"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
	EnableInspector bool   `env:"ENABLE_STORE_INSPECTOR,default=false"`
}

// LoadConfig reads the environment, a .env file must have been loaded before.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if len(config.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("config error: JWT_SECRET must be at least 32 characters")
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) HealthAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HealthGRPCPort)
}

// Words splits the comma separated CENSORED_WORDS.
func (c Config) Words() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
