package mirror

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the mirror server settings. Values come from a config.yaml
// next to the binary (or ./configs) with MEANVAL_-prefixed environment
// variables taking precedence, e.g. MEANVAL_REDIS_ADDRESS.
type Config struct {
	Listen string `mapstructure:"listen"`
	Redis  struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Key      string `mapstructure:"key"`
	} `mapstructure:"redis"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MEANVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8090")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "meanval:data")
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Redis.Address == "" {
		return nil, fmt.Errorf("redis.address is required")
	}
	return &cfg, nil
}
