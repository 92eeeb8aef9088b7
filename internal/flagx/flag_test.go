package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:5000/api", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:5000/api"},
		},
		{
			name:    "equals form",
			args:    []string{"--env=staging", "-v"},
			allowed: []string{"--env"},
			want:    []string{"--env=staging"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-d", "-a", "url"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "url"},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
