package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"default", DefaultConfig(), ""},
		{"single category", Config{Categories: []int{64}, InitialFreeCount: 1}, ""},
		{"zero initial count", Config{Categories: []int{64}}, ""},
		{"empty", Config{InitialFreeCount: 5}, "no categories"},
		{"nil slice", Config{Categories: nil, InitialFreeCount: 5}, "no categories"},
		{"zero size", Config{Categories: []int{0, 50}, InitialFreeCount: 5}, "non-positive size 0"},
		{"negative size", Config{Categories: []int{50, -100}, InitialFreeCount: 5}, "non-positive size -100"},
		{"duplicate", Config{Categories: []int{50, 100, 100}, InitialFreeCount: 5}, "duplicate category size 100"},
		{"descending", Config{Categories: []int{100, 50}, InitialFreeCount: 5}, "not in ascending order"},
		{"negative initial count", Config{Categories: []int{50}, InitialFreeCount: -1}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, "50,100,200,300,500 x5", DefaultConfig().String())
}
