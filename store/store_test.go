package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDocID(t *testing.T) {
	valid := []string{"abc123", "5e8f8f8f8f8f8f8f8f8f8f8f", "user-1"}
	for _, id := range valid {
		assert.True(t, validDocID(id), "expected %q to be valid", id)
	}

	invalid := []string{"", ".", "..", "a/b", "/", "posts/123"}
	for _, id := range invalid {
		assert.False(t, validDocID(id), "expected %q to be invalid", id)
	}
}
