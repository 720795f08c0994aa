package cmd

import (
	"errors"
	"fmt"
	"strings"

	"eats/internal/pkg/errs"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	RabbitMQURL      string
	RabbitMQExchange string
	MailgunDomain    string
	MailgunAPIKey    string
	MailFrom         string
	PromotionCron    string
}

const (
	defaultHTTPPort         = "8080"
	defaultDBSslMode        = "disable"
	defaultRabbitMQExchange = "eats.notifications"
)

// WithDefaults fills the optional settings that were left empty.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = defaultHTTPPort
	}
	if c.DBSslMode == "" {
		c.DBSslMode = defaultDBSslMode
	}
	if c.RabbitMQExchange == "" {
		c.RabbitMQExchange = defaultRabbitMQExchange
	}
	return c
}

// Validate reports every missing database setting.
func (c Config) Validate() error {
	required := []struct{ key, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_NAME", c.DBName},
	}

	var errList []error
	for _, setting := range required {
		if strings.TrimSpace(setting.value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(setting.key))
		}
	}
	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
