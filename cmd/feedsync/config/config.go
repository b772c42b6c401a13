package config

import "time"

// Config holds application configuration.
type Config struct {
	FeedURL     string        `env:"FEED_URL"`
	DatabaseURL string        `env:"DATABASE_URL"`
	StateFile   string        `env:"STATE_FILE" envDefault:"feedsync-state.json"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	Catalog  Catalog
	RabbitMQ RabbitMQ
	Monitor  Monitor
	Sync     Sync
}

// Catalog holds remote catalog API configuration.
type Catalog struct {
	BaseURL     string `env:"CATALOG_URL"`
	AccessToken string `env:"CATALOG_ACCESS_TOKEN"`
	Vendor      string `env:"CATALOG_VENDOR" envDefault:"solederva"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"feedsync-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"feedsync.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"feedsync.sync"`
}

// Monitor holds feed monitor configuration.
type Monitor struct {
	Interval       time.Duration `env:"MONITOR_INTERVAL" envDefault:"15m"`
	ErrorThreshold int           `env:"MONITOR_ERROR_THRESHOLD" envDefault:"5"`
}

// Sync holds sync controller configuration.
type Sync struct {
	CallInterval time.Duration `env:"SYNC_CALL_INTERVAL" envDefault:"500ms"`
}
