package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	old := os.Args
	os.Args = []string{"blogctl", "-a", "https://blog.example.com/api", "-t", "5", "-f", "/tmp/tok"}
	t.Cleanup(func() { os.Args = old })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://blog.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/tok", cfg.TokenFile)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	old := os.Args
	os.Args = []string{"blogctl", "-z", "junk", "-a", "https://blog.example.com/api"}
	t.Cleanup(func() { os.Args = old })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://blog.example.com/api", cfg.BaseURL)
}
