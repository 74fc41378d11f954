package walker

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
)

// Config carries the named options a Walker is constructed with.
type Config struct {
	// Definitions is an arbitrary shared store (commonly a scope or a
	// definitions registry) made available to handlers via
	// (*Walker).Definitions.
	Definitions any `mapstructure:"definitions"`
	// Trace emits a debug log event for every handler dispatch.
	Trace bool `mapstructure:"trace"`
	// Logger receives trace events. Defaults to a no-op logger.
	Logger zerolog.Logger `mapstructure:"-"`
	// AfterConfigure, if set, runs exactly once at the end of New.
	AfterConfigure func(*Walker) `mapstructure:"-"`
}

// DefaultConfig returns a Config with a disabled logger and no options set.
func DefaultConfig() Config {
	return Config{Logger: zerolog.Nop()}
}

// NewConfig decodes a caller-supplied option map into a Config. Unknown
// keys are a construction-time error.
func NewConfig(options map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(options); err != nil {
		return cfg, fmt.Errorf("decoding walker options: %w", err)
	}
	return cfg, nil
}
