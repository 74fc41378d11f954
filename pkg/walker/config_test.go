package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintkit/lintkit/pkg/walker"
)

func TestNewConfig(t *testing.T) {
	for name, tc := range map[string]struct {
		options map[string]any
		want    walker.Config
		wantErr string
	}{
		"degenerate": {
			want: walker.DefaultConfig(),
		},
		"trace": {
			options: map[string]any{"trace": true},
			want: func() walker.Config {
				cfg := walker.DefaultConfig()
				cfg.Trace = true
				return cfg
			}(),
		},
		"definitions": {
			options: map[string]any{"definitions": "shared-store"},
			want: func() walker.Config {
				cfg := walker.DefaultConfig()
				cfg.Definitions = "shared-store"
				return cfg
			}(),
		},
		"unknown key": {
			options: map[string]any{"bogus": 1},
			wantErr: "decoding walker options",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := walker.NewConfig(tc.options)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want.Trace, got.Trace)
			assert.Equal(t, tc.want.Definitions, got.Definitions)
		})
	}
}

func TestAfterConfigureRunsOnce(t *testing.T) {
	var calls int
	cfg := walker.DefaultConfig()
	cfg.Definitions = "store"
	cfg.AfterConfigure = func(w *walker.Walker) {
		calls++
		assert.Equal(t, "store", w.Definitions())
	}

	w := walker.New(walker.Handlers{}, cfg)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "store", w.Definitions())
}
