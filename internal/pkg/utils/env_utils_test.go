package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BSCSCAN_NODE_TEST_VAR", "set")
	assert.Equal(t, "set", GetEnv("BSCSCAN_NODE_TEST_VAR", "fallback"))

	t.Setenv("BSCSCAN_NODE_TEST_VAR", "")
	assert.Equal(t, "fallback", GetEnv("BSCSCAN_NODE_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BSCSCAN_NODE_TEST_UNSET", "fallback"))
}
