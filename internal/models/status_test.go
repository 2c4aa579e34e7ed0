package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusSucceeded, ParseStatus("succeeded"))
	assert.Equal(t, StatusFailed, ParseStatus("failed"))
	assert.Equal(t, StatusCanceled, ParseStatus("canceled"))
	assert.Equal(t, StatusUnrecognized, ParseStatus("refunded"))
	assert.Equal(t, StatusUnrecognized, ParseStatus(""))
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusSucceeded.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCanceled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusUnrecognized.Terminal())
}
