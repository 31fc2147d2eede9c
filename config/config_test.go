package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"MAX_UPLOAD_MB": "25", "BAD": "not-a-number"}

	assert.Equal(t, 25, GetInt(cfg, "MAX_UPLOAD_MB", 10))
	assert.Equal(t, 10, GetInt(cfg, "BAD", 10))
	assert.Equal(t, 10, GetInt(cfg, "MISSING", 10))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"A": "true", "B": "FALSE", "C": "1", "D": "maybe"}

	assert.True(t, GetBool(cfg, "A", false))
	assert.False(t, GetBool(cfg, "B", true))
	assert.True(t, GetBool(cfg, "C", false))
	assert.True(t, GetBool(cfg, "D", true))
	assert.False(t, GetBool(cfg, "MISSING", false))
}
