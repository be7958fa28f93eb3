package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, ""},
		{"separate value", []string{"--config", "/tmp/c.toml"}, "/tmp/c.toml"},
		{"equals form", []string{"--config=/tmp/c.toml"}, "/tmp/c.toml"},
		{"with other flags", []string{"--from", "tasks.yaml", "--config", "/tmp/c.toml"}, "/tmp/c.toml"},
		{"dangling flag", []string{"--config"}, ""},
		{"unrelated flag", []string{"--from", "tasks.yaml"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configPathFromArgs(tt.args))
		})
	}
}
