package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel     string
	Trace        string
	Format       string
	Profile      string
	Seed         int64
	Trials       int
	BER          float64
	DoubleErrors bool
}

func init() {
	SetDefaults(viper.GetViper())
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LogLevel", "warn")
	v.SetDefault("Trace", "")
	v.SetDefault("Format", "text")
	v.SetDefault("Profile", "")
	v.SetDefault("Seed", 1)
	v.SetDefault("Trials", 10000)
	v.SetDefault("BER", 0.05)
	v.SetDefault("DoubleErrors", false)
}

// Setup reads the optional config file and HAMMING_* environment variables
// into v.
func Setup(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix("hamming")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if config.BER < 0 || config.BER > 1 {
		return nil, fmt.Errorf("ber %v out of range [0,1]", config.BER)
	}
	if config.Trials < 0 {
		return nil, fmt.Errorf("trials %d must not be negative", config.Trials)
	}
	return &config, nil
}
