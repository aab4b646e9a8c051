package main

import "time"

type Config struct {
	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE,required=true" validate:"gt=0"`
	PublishTimeout    time.Duration `env:"PUBLISH_TIMEOUT,required=true"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=5s"`
	DebugPort         int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
	BridgeBaseURL     string        `env:"BRIDGE_BASE_URL,required=true" validate:"url"`
	BridgeTimeout     time.Duration `env:"BRIDGE_TIMEOUT,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	RedisAddr         string        `env:"REDIS_ADDR,required=true" validate:"hostname_port"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB,default=0"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080" validate:"gt=0,lte=65535"`
}
