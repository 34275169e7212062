package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksysoev/waterlily/pkg/api"
	"github.com/ksysoev/waterlily/pkg/auth"
	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/ksysoev/waterlily/pkg/prov"
	"github.com/ksysoev/waterlily/pkg/repo"
	"github.com/ksysoev/waterlily/pkg/store"
	"github.com/spf13/viper"
)

type appConfig struct {
	API    prov.Config  `mapstructure:"api"`
	Repo   repo.Config  `mapstructure:"repo"`
	Survey core.Config  `mapstructure:"survey"`
	Server api.Config   `mapstructure:"server"`
	Auth   auth.Config  `mapstructure:"auth"`
	Store  store.Config `mapstructure:"store"`
	UI     uiConfig     `mapstructure:"ui"`
}

type uiConfig struct {
	Accessible bool `mapstructure:"accessible"`
}

// String keeps secrets out of the debug log.
func (c appConfig) String() string {
	c.Repo.Password = mask(c.Repo.Password)
	c.Auth.Secret = mask(c.Auth.Secret)

	type plain appConfig

	return fmt.Sprintf("%+v", plain(c))
}

func mask(s string) string {
	if s == "" {
		return ""
	}

	return "***"
}

// loadConfig loads the application configuration using the provided arguments and environment variables.
// It returns a pointer to appConfig or an error if loading or unmarshalling fails.
func loadConfig(arg *args) (*appConfig, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	v.SetDefault("api.url", "http://localhost:3000")
	v.SetDefault("repo.redis_addr", "localhost:6379")
	v.SetDefault("repo.key_prefix", "waterlily::")
	v.SetDefault("survey.mandatory_group", core.DefaultMandatoryGroup)
	v.SetDefault("survey.profile", "default")
	v.SetDefault("server.listen", ":3000")
	v.SetDefault("store.driver", store.DriverSQLite)
	v.SetDefault("store.dsn", "file:waterlily.db")
	v.SetDefault("store.seed", true)

	if arg.ConfigPath != "" {
		v.SetConfigFile(arg.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	slog.Debug("Config loaded", slog.String("config", cfg.String()))

	return &cfg, nil
}
