package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Orders       OrdersConfig       `mapstructure:"orders"`
	Productivity ProductivityConfig `mapstructure:"productivity"`
	Auth         AuthConfig         `mapstructure:"auth"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Email        EmailConfig        `mapstructure:"email"`
	Events       EventsConfig       `mapstructure:"events"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig relational store settings
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // mysql | postgres
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// OrdersConfig service-order policy
type OrdersConfig struct {
	InitialStatus   string   `mapstructure:"initial_status"`
	DefaultPageSize int      `mapstructure:"default_page_size"`
	MaxPageSize     int      `mapstructure:"max_page_size"`
	Categories      []string `mapstructure:"categories"`
}

// ProductivityConfig productivity report settings
type ProductivityConfig struct {
	Since     string    `mapstructure:"since"` // YYYY-MM-DD
	SinceTime time.Time `mapstructure:"-"`
}

// AuthConfig staff authentication
type AuthConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	AdminUsername      string `mapstructure:"admin_username"`
	AdminPassword      string `mapstructure:"admin_password"`
	LoginMaxAttempts   int    `mapstructure:"login_max_attempts"`
	LoginWindowSeconds int    `mapstructure:"login_window_seconds"`
}

// JWTConfig JWT settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig SMTP settings for customer notifications
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// EventsConfig status-change event publishing
type EventsConfig struct {
	Driver      string   `mapstructure:"driver"` // none | kafka | rabbitmq
	Brokers     []string `mapstructure:"brokers"`
	Topic       string   `mapstructure:"topic"`
	RabbitMQURL string   `mapstructure:"rabbitmq_url"`
	Exchange    string   `mapstructure:"exchange"`
}

var (
	// GlobalConfig last loaded configuration
	GlobalConfig *Config
)

// LoadConfig loads the configuration.
// Precedence: env (BLUEDOCK_*) > external file > embedded defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged config file: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/bluedock")
		external.AddConfigPath("$HOME/.bluedock")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("warning: merge external config: %v", err)
			} else {
				log.Printf("merged config file: %s", external.ConfigFileUsed())
			}
		}
	}

	v.SetEnvPrefix("BLUEDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// normalize fills derived fields and defaults missing from partial configs.
func (c *Config) normalize() error {
	if c.JWT.ExpireHours <= 0 {
		c.JWT.ExpireHours = 24
	}
	c.JWT.ExpireTime = time.Duration(c.JWT.ExpireHours) * time.Hour

	if c.Orders.DefaultPageSize <= 0 {
		c.Orders.DefaultPageSize = 10
	}
	if c.Orders.MaxPageSize < c.Orders.DefaultPageSize {
		c.Orders.MaxPageSize = 100
	}
	if c.Auth.LoginMaxAttempts <= 0 {
		c.Auth.LoginMaxAttempts = 5
	}
	if c.Auth.LoginWindowSeconds <= 0 {
		c.Auth.LoginWindowSeconds = 60
	}

	if c.Productivity.Since != "" {
		t, err := time.ParseInLocation("2006-01-02", c.Productivity.Since, time.Local)
		if err != nil {
			return fmt.Errorf("productivity.since: %w", err)
		}
		c.Productivity.SinceTime = t
	}
	return nil
}

// IsRelease reports whether the server runs in gin release mode
func (c *Config) IsRelease() bool {
	return c != nil && c.Server.Mode == "release"
}

// PrintConfig logs the active configuration without secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("active config:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  database: %s %s@%s:%s/%s",
		GlobalConfig.Database.Driver,
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  initial status: %s", GlobalConfig.Orders.InitialStatus)
	log.Printf("  auth: %v  email: %v  events: %s",
		GlobalConfig.Auth.Enabled, GlobalConfig.Email.Enabled, GlobalConfig.Events.Driver)
}

// SafeErrorMessage hides internal error details from clients in release mode
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig.IsRelease() {
		return fallback
	}
	return err.Error()
}
