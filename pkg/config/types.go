package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Editor      EditorConfig   `mapstructure:"editor"`
	Security    SecurityConfig `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// EditorConfig tunes the annotation editor gesture thresholds served to
// clients and used by the embedded session engine
type EditorConfig struct {
	MinDragPx      float64 `mapstructure:"min_drag_px"`
	MinIntervalGap float64 `mapstructure:"min_interval_gap"`
	MinBoxDim      float64 `mapstructure:"min_box_dim"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS     bool `mapstructure:"enable_cors"`
	EnableRecovery bool `mapstructure:"enable_recovery"`
}
