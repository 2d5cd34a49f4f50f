// Package config loads the optional yaml config file of the routing engine.
//
// Config file locations (priority order):
//  1. $ROADGRAPH_CONFIG
//  2. ./roadgraph.yaml
//
// Command line flags given explicitly override the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr      = ":5000"
	defaultMapFile         = "solo_jogja.osm.pbf"
	defaultMaxSnapDistance = 1.0
	defaultHeuristic       = "greatcircle"
	defaultCORSMaxAge      = 300
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Map     MapConfig     `yaml:"map"`
	Routing RoutingConfig `yaml:"routing"`
	CORS    CORSConfig    `yaml:"cors"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	// SwaggerURL points the swagger ui to the API definition. Derived from
	// ListenAddr when empty.
	SwaggerURL string `yaml:"swagger_url"`
}

type MapConfig struct {
	// File is an osm .pbf file or a text road map (one segment per line).
	File string `yaml:"file"`
}

type RoutingConfig struct {
	// MaxSnapDistance in km. Query points further than this from every
	// vertex are rejected, zero disables the check.
	MaxSnapDistance float64 `yaml:"max_snap_distance"`
	// Heuristic is the A* estimate, greatcircle or straightline.
	Heuristic string `yaml:"heuristic"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxAge         int      `yaml:"max_age"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config file, or "" if none.
func FindConfigPath() string {
	if p := os.Getenv("ROADGRAPH_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("roadgraph.yaml"); err == nil {
		return "roadgraph.yaml"
	}
	return ""
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, path, err
	}

	cfg.applyDefaults()
	return &cfg, path, nil
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	if c.Server.SwaggerURL == "" {
		c.Server.SwaggerURL = fmt.Sprintf("http://localhost%s/swagger/doc.json", c.Server.ListenAddr)
	}
	if c.Map.File == "" {
		c.Map.File = defaultMapFile
	}
	if c.Routing.MaxSnapDistance == 0 {
		c.Routing.MaxSnapDistance = defaultMaxSnapDistance
	}
	if c.Routing.Heuristic == "" {
		c.Routing.Heuristic = defaultHeuristic
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"https://*", "http://*"}
	}
	if c.CORS.MaxAge == 0 {
		c.CORS.MaxAge = defaultCORSMaxAge
	}
}

func (c *Config) validate() error {
	if c.Routing.MaxSnapDistance < 0 {
		return fmt.Errorf("routing.max_snap_distance must not be negative, got %v", c.Routing.MaxSnapDistance)
	}
	switch c.Routing.Heuristic {
	case "", "greatcircle", "straightline":
	default:
		return fmt.Errorf("routing.heuristic: unknown heuristic %q", c.Routing.Heuristic)
	}
	return nil
}
