package terminal

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds session behavior that callers may tune per environment
type Config struct {
	// Echo prints typed runes at the cursor on GetChar, like curses echo mode
	Echo bool `yaml:"echo"`

	// TTY is a terminal device path; empty uses the controlling terminal
	TTY string `yaml:"tty"`

	// TabWidth is the tab stop interval used when writing '\t'
	TabWidth int `yaml:"tab_width"`

	// Mask is the rune Mask echoes when called with a zero mask
	Mask string `yaml:"mask"`

	// Scroll moves the screen up when output passes the last row,
	// otherwise the cursor stays on the last row
	Scroll bool `yaml:"scroll"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Echo:     true,
		TabWidth: 8,
		Mask:     "*",
		Scroll:   true,
	}
}

// LoadConfig builds configuration from defaults, the YAML file named by
// TERMLINE_CONFIG (if set), then TERMLINE_* environment overrides
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("TERMLINE_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if echo := os.Getenv("TERMLINE_ECHO"); echo != "" {
		if val, err := strconv.ParseBool(echo); err == nil {
			cfg.Echo = val
		}
	}

	if tty := os.Getenv("TERMLINE_TTY"); tty != "" {
		cfg.TTY = tty
	}

	if tab := os.Getenv("TERMLINE_TAB_WIDTH"); tab != "" {
		if val, err := strconv.Atoi(tab); err == nil && val > 0 {
			cfg.TabWidth = val
		}
	}

	if mask := os.Getenv("TERMLINE_MASK"); mask != "" {
		cfg.Mask = mask
	}

	if scroll := os.Getenv("TERMLINE_SCROLL"); scroll != "" {
		if val, err := strconv.ParseBool(scroll); err == nil {
			cfg.Scroll = val
		}
	}

	return cfg, nil
}

// loadFile overlays YAML settings onto cfg; absent keys keep their value
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 8
	}
	return nil
}

// MaskRune returns the first rune of Mask, '*' when unset
func (c *Config) MaskRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Mask)
	if r == utf8.RuneError {
		return '*'
	}
	return r
}
