package config

import (
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                string            `mapstructure:"env"`
	LogLevel           string            `mapstructure:"log_level"`
	LogType            string            `mapstructure:"log_type"`
	ServiceName        string            `mapstructure:"service_name"`
	Port               string            `mapstructure:"port"`
	Version            string            `mapstructure:"version"`
	CorsMaxAgeHours    time.Duration     `mapstructure:"cors_max_age_hours"`
	ApiUrlPath         string            `mapstructure:"api_url_path"`
	MaxBodySize        int64             `mapstructure:"max_body_size"`
	CacheSettings      *CacheConfig      `mapstructure:"cache"`
	DbSettings         *DatabaseConfig   `mapstructure:"database"`
	GapSettings        *GapConfig        `mapstructure:"gap"`
	HttpServerSettings *HttpServerConfig `mapstructure:"http_server"`
}

type CacheConfig struct {
	Servers         string        `mapstructure:"servers"`
	TtlForGapReport time.Duration `mapstructure:"ttl_for_gap_report"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
}

// GapConfig bounds the gap comparisons. Zero values fall back to the defaults below.
type GapConfig struct {
	MaxCompetitors int `mapstructure:"max_competitors"`
	ResultLimit    int `mapstructure:"result_limit"`
}

type HttpServerConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

const (
	DefaultMaxCompetitors = 4
	DefaultResultLimit    = 500
)

func MustLoad() *Config {
	viper.AddConfigPath(path.Join("."))
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		slog.Error("can't initialize config file.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	cfg, err := unmarshal(viper.GetViper())
	if err != nil {
		slog.Error("error unmarshalling viper config.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	return cfg
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ApiUrlPath == "" {
		c.ApiUrlPath = "/api"
	}
	if c.GapSettings == nil {
		c.GapSettings = &GapConfig{}
	}
	if c.GapSettings.MaxCompetitors <= 0 {
		c.GapSettings.MaxCompetitors = DefaultMaxCompetitors
	}
	if c.GapSettings.ResultLimit <= 0 {
		c.GapSettings.ResultLimit = DefaultResultLimit
	}
	if c.CacheSettings == nil {
		c.CacheSettings = &CacheConfig{}
	}
	if c.CacheSettings.TtlForGapReport <= 0 {
		c.CacheSettings.TtlForGapReport = 15 * time.Minute
	}
	if c.HttpServerSettings == nil {
		c.HttpServerSettings = &HttpServerConfig{}
	}
	if c.HttpServerSettings.ShutdownTimeout <= 0 {
		c.HttpServerSettings.ShutdownTimeout = 10 * time.Second
	}
}
