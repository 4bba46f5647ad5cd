package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	APP struct {
		Name     string
		Host     string
		Port     string
		Env      string
		Timezone string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
		SSLMode  string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Avatar struct {
		Enabled bool
		BaseURL string
		Timeout time.Duration
	}
	CORS struct {
		AllowedOrigins []string
	}

	Config struct {
		App    APP
		DB     DB
		MQ     MQ
		Avatar Avatar
		CORS   CORS
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, def.String()))
	if err != nil {
		return def
	}
	return v
}

func getEnvList(key, def string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, def), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func Load() Config {
	app := APP{
		Name:     getEnv("SERVICE_NAME", "userdirectory"),
		Host:     getEnv("SERVICE_HOST", ""),
		Port:     getEnv("SERVICE_PORT", "8080"),
		Env:      getEnv("SERVICE_ENV", ""),
		Timezone: getEnv("SERVICE_TIMEZONE", "UTC"),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", "5432"),
		SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "users"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "users.events"),
	}
	avatar := Avatar{
		Enabled: getEnvBool("AVATAR_LOOKUP_ENABLED", true),
		BaseURL: getEnv("AVATAR_BASE_URL", "https://www.gravatar.com/avatar"),
		Timeout: getEnvDuration("AVATAR_TIMEOUT", 2*time.Second),
	}
	cors := CORS{
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "*"),
	}

	return Config{
		App:    app,
		DB:     db,
		MQ:     mq,
		Avatar: avatar,
		CORS:   cors,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.DB.Host + ":" + c.DB.Port,
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Path:   c.DB.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.DB.SSLMode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// MQEnabled reports whether lifecycle events should be sent to RabbitMQ.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}
