package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	LookupModeRemote  = "remote"
	LookupModeOffline = "offline"
)

type Cfg struct {
	Port          string        `mapstructure:"PORT"`
	Env           string        `mapstructure:"ENV"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	ServiceName   string        `mapstructure:"SERVICE_NAME"`
	ViaCEPURL     string        `mapstructure:"VIACEP_URL"`
	LookupTimeout time.Duration `mapstructure:"LOOKUP_TIMEOUT"`
	LookupMode    string        `mapstructure:"LOOKUP_MODE"`
	ZipkinURL     string        `mapstructure:"ZIPKIN_URL"`
}

// LoadConfig reads path/.env when present and lets environment variables
// override it. A missing .env file is not an error.
func LoadConfig(path string) (*Cfg, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVICE_NAME", "brdocs")
	v.SetDefault("VIACEP_URL", "https://viacep.com.br/ws")
	v.SetDefault("LOOKUP_TIMEOUT", "5s")
	v.SetDefault("LOOKUP_MODE", LookupModeRemote)
	v.SetDefault("ZIPKIN_URL", "")

	v.SetConfigType("env")
	v.SetConfigFile(filepath.Join(path, ".env"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Cfg
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Cfg) validate() error {
	switch c.LookupMode {
	case LookupModeRemote, LookupModeOffline:
	default:
		return fmt.Errorf("invalid LOOKUP_MODE %q: want %q or %q", c.LookupMode, LookupModeRemote, LookupModeOffline)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("invalid LOOKUP_TIMEOUT %s: must be positive", c.LookupTimeout)
	}
	if c.LookupMode == LookupModeRemote && c.ViaCEPURL == "" {
		return errors.New("VIACEP_URL is required in remote lookup mode")
	}
	return nil
}
