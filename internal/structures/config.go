package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath      string        `yaml:"filePath" validate:"required|unixPath"`
	FlushInterval time.Duration `yaml:"flushInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type GatewayConfig struct {
	BaseURL        string        `yaml:"baseURL" validate:"required"`
	Timeout        time.Duration `yaml:"timeout" validate:"required|min:1"`
	UserAgent      string        `yaml:"userAgent"`
	RequestsPerSec float64       `yaml:"requestsPerSec"`
	Burst          int           `yaml:"burst"`
}

type DirectoryConfig struct {
	SessionTTL  time.Duration `yaml:"sessionTTL"`
	MaxSessions int           `yaml:"maxSessions"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Gateway     GatewayConfig   `yaml:"gateway"`
	Directory   DirectoryConfig `yaml:"directory"`
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}
