package bell

import (
	"os"
	"strconv"
	"time"
)

// Config controls the bell tone
type Config struct {
	Enabled    bool
	Frequency  float64       // Hz
	Duration   time.Duration // Total tone length
	Attack     time.Duration
	Release    time.Duration
	SampleRate int
	Volume     float64 // 0.0-1.0
}

// DefaultConfig returns a short A5 ding
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Frequency:  880,
		Duration:   120 * time.Millisecond,
		Attack:     5 * time.Millisecond,
		Release:    80 * time.Millisecond,
		SampleRate: 44100,
		Volume:     0.5,
	}
}

// LoadConfig loads bell configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("TERMLINE_BELL_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if freq := os.Getenv("TERMLINE_BELL_FREQUENCY"); freq != "" {
		if val, err := strconv.ParseFloat(freq, 64); err == nil && val > 0 {
			cfg.Frequency = val
		}
	}

	if dur := os.Getenv("TERMLINE_BELL_DURATION"); dur != "" {
		if val, err := time.ParseDuration(dur); err == nil && val > 0 {
			cfg.Duration = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("TERMLINE_BELL_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if sampleRate := os.Getenv("TERMLINE_BELL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
