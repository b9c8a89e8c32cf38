package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("SCHEDULE_TEST_STRING", "value")

	assert.Equal(t, "value", GetEnvString("SCHEDULE_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("SCHEDULE_TEST_STRING_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SCHEDULE_TEST_INT", "42")
	t.Setenv("SCHEDULE_TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, GetEnvInt("SCHEDULE_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SCHEDULE_TEST_INT_MISSING", 7))
	assert.Equal(t, 7, GetEnvInt("SCHEDULE_TEST_INT_BAD", 7), "unparseable values fall back to the default")
}
