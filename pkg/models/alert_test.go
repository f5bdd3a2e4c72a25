package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlertID(t *testing.T) {
	id, err := ParseAlertID("42")
	assert.NoError(t, err)
	assert.Equal(t, AlertID(42), id)

	id, err = ParseAlertID("  7  ")
	assert.NoError(t, err)
	assert.Equal(t, AlertID(7), id)
}

func TestParseAlertIDRejectsInvalid(t *testing.T) {
	tests := []string{"", "   ", "abc", "12.5", "-1", "0"}
	for _, input := range tests {
		_, err := ParseAlertID(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseAlertIDBatch(t *testing.T) {
	ids, err := ParseAlertIDBatch("42,43,44")
	assert.NoError(t, err)
	assert.Equal(t, []AlertID{42, 43, 44}, ids)

	ids, err = ParseAlertIDBatch(" 1 , 2 , 3 ")
	assert.NoError(t, err)
	assert.Equal(t, []AlertID{1, 2, 3}, ids)

	ids, err = ParseAlertIDBatch("99")
	assert.NoError(t, err)
	assert.Equal(t, []AlertID{99}, ids)
}

func TestParseAlertIDBatchRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"42, ,44", // empty token
		"42,abc",  // non-numeric token
		"42,-1",   // non-positive id
	}
	for _, input := range tests {
		_, err := ParseAlertIDBatch(input)
		assert.Error(t, err, "input %q", input)
	}
}
