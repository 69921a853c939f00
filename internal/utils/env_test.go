package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STRING_MISSING", "default"))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_FALSE", "false")
	t.Setenv("TEST_BOOL_INVALID", "yep")

	assert.True(t, GetEnvBool("TEST_BOOL_TRUE", false))
	assert.False(t, GetEnvBool("TEST_BOOL_FALSE", true))
	assert.True(t, GetEnvBool("TEST_BOOL_INVALID", true))
	assert.False(t, GetEnvBool("TEST_BOOL_MISSING", false))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "30")
	t.Setenv("TEST_DURATION_INVALID", "soon")
	t.Setenv("TEST_DURATION_NEGATIVE", "-5")

	assert.Equal(t, 30*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_INVALID", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_NEGATIVE", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_MISSING", time.Minute))
}

func TestGetEnvPort(t *testing.T) {
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_PORT_INVALID", "99999")

	assert.Equal(t, 9090, GetEnvPort("TEST_PORT", 8080))
	assert.Equal(t, 8080, GetEnvPort("TEST_PORT_INVALID", 8080))
	assert.Equal(t, 8080, GetEnvPort("TEST_PORT_MISSING", 8080))
}

func TestGetEnvList(t *testing.T) {
	defaults := []string{"a", "b"}

	tests := []struct {
		name  string
		value string
		set   bool
		want  []string
	}{
		{name: "unset returns default", want: defaults},
		{name: "single entry", value: "x", set: true, want: []string{"x"}},
		{name: "multiple entries trimmed", value: " x , y ,z", set: true, want: []string{"x", "y", "z"}},
		{name: "empty entries dropped", value: "x,,y,", set: true, want: []string{"x", "y"}},
		{name: "only separators returns default", value: " , ,", set: true, want: defaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_LIST", tt.value)
			}
			assert.Equal(t, tt.want, GetEnvList("TEST_LIST", defaults))
		})
	}
}
