package godux_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/godux"
)

func TestProbeUnknownAction(t *testing.T) {
	first := godux.ProbeUnknownAction()
	second := godux.ProbeUnknownAction()

	assert.True(t, strings.HasPrefix(first, "@@godux/PROBE_UNKNOWN_ACTION_"))
	assert.NotEqual(t, first, second, "each probe must be freshly randomized")
}

func TestReservedNamespace(t *testing.T) {
	assert.True(t, strings.HasPrefix(godux.ActionTypeInit, "@@godux/"))
	assert.True(t, strings.HasPrefix(godux.ActionTypeReplace, "@@godux/"))
}

func TestTypeOf(t *testing.T) {
	type custom struct {
		Type string
		N    int
	}
	type untagged struct {
		Payload int
	}

	tests := []struct {
		name     string
		action   any
		want     any
		wantOK   bool
	}{
		{"action helper", godux.Action{Type: "A"}, "A", true},
		{"generic map", map[string]any{"type": "B"}, "B", true},
		{"typed map", map[string]string{"type": "C"}, "C", true},
		{"custom struct", custom{Type: "D", N: 1}, "D", true},
		{"pointer to struct", &custom{Type: "E"}, "E", true},
		{"non-string type value", map[string]any{"type": 7}, 7, true},
		{"empty string type", godux.Action{}, "", true},
		{"missing map key", map[string]any{"payload": 1}, nil, false},
		{"nil map value", map[string]any{"type": nil}, nil, false},
		{"untagged struct", untagged{Payload: 1}, nil, false},
		{"nil action", nil, nil, false},
		{"primitive", 5, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := godux.TypeOf(tt.action)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsPlainAction(t *testing.T) {
	assert.True(t, godux.IsPlainAction(godux.Action{Type: "X"}))
	assert.True(t, godux.IsPlainAction(map[string]any{"type": "X"}))
	assert.False(t, godux.IsPlainAction("X"))
	assert.False(t, godux.IsPlainAction(func() {}))
}
