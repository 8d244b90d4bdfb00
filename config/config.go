package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	AllowOrigins          string
	MetricsEnabled        bool
	MaxProcesses          int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from the first of paths that has
// one. A missing file is fine, defaults and SCHEDULER_* env vars apply.
func LoadSchedulerConfig(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 1000)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log_level"),
		AllowOrigins:          v.GetString("cors.allow_origins"),
		MetricsEnabled:        v.GetBool("metrics.enabled"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, errors.New("scheduler.round_robin.time_quantum must be positive")
	}
	return cfg, nil
}
