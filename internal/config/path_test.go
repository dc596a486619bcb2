package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("FINTRACK_TEST_DIR", "/tmp/fintrack")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "plain path untouched", in: "/var/data/fintrack.db", want: "/var/data/fintrack.db"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/data/fintrack.db", want: filepath.Join(home, "data/fintrack.db")},
		{name: "env var", in: "$FINTRACK_TEST_DIR/fintrack.db", want: "/tmp/fintrack/fintrack.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
