package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// Config holds the bag-filling tool configuration
type Config struct {
	Sizes   []Size       `yaml:"sizes"`
	Pieces  []string     `yaml:"pieces"` // Empty means the whole catalogue
	Workers int          `yaml:"workers"`
	Log     LogConfig    `yaml:"log"`
	Cache   CacheConfig  `yaml:"cache"`
	Export  ExportConfig `yaml:"export"`
	SSH     SSHConfig    `yaml:"ssh"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings. An empty address disables it.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTLHours int    `yaml:"ttl_hours"`
}

func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLHours) * time.Hour
}

// ExportConfig holds level export settings
type ExportConfig struct {
	Dir  string `yaml:"dir"`
	Seed int64  `yaml:"seed"`
}

// SSHConfig holds the viewer SSH server settings
type SSHConfig struct {
	Listen  string `yaml:"listen"`
	HostKey string `yaml:"host_key"`
	Viewer  string `yaml:"viewer"` // Path to the bagfill binary
}

// Size is a bag size written as WIDTHxHEIGHT
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func ParseSize(v string) (Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(v)), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", v)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", v, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", v, err)
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", v)
	}

	return Size{Width: w, Height: h}, nil
}

func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseSize(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = []Size{{3, 1}, {2, 2}, {3, 2}, {4, 2}, {3, 3}}
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "bagfill"
	}
	if c.Cache.Redis.TTLHours == 0 {
		c.Cache.Redis.TTLHours = 24 * 7
	}
	if c.SSH.Listen == "" {
		c.SSH.Listen = ":2222"
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := cfg.AllowedPieces(); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers: %d", cfg.Workers)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// AllowedPieces resolves the configured piece names. Nil means every piece.
func (c *Config) AllowedPieces() ([]mino.Canonical, error) {
	if len(c.Pieces) == 0 {
		return nil, nil
	}

	allowed := make([]mino.Canonical, 0, len(c.Pieces))
	for _, name := range c.Pieces {
		p, err := mino.ParseCanonical(name)
		if err != nil {
			return nil, fmt.Errorf("invalid pieces: %w", err)
		}
		allowed = append(allowed, p)
	}
	return allowed, nil
}
