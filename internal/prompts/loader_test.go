package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AnswerPrompts(t *testing.T) {
	ClearCache()

	system, err := Get("answer.json", "system")
	require.NoError(t, err)
	assert.Equal(t, "You are a helpful assistant.", system)

	user, err := Get("answer.json", "user")
	require.NoError(t, err)
	assert.Equal(t, "I am going to Paris, what should I see?", user)
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("answer.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestGet_Cached(t *testing.T) {
	ClearCache()

	first := MustGet("answer.json", "system")
	cacheMu.RLock()
	_, cached := cache["answer.json"]
	cacheMu.RUnlock()

	assert.True(t, cached)
	assert.Equal(t, first, MustGet("answer.json", "system"))
}
