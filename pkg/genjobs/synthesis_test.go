package genjobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	t.Run("bare json", func(t *testing.T) {
		out, err := parseCandidates(`{"testCases": [{"title": "T", "description": "D", "expectedOutcome": "E"}]}`)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "T", out[0].Title)
	})

	t.Run("fenced json with prose", func(t *testing.T) {
		out, err := parseCandidates("Here you go:\n```json\n" +
			`{"testCases": [{"title": "A", "description": "B", "expectedOutcome": "C"}, {"title": "D", "description": "E", "expectedOutcome": "F"}]}` +
			"\n```\nHope this helps!")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("no json", func(t *testing.T) {
		_, err := parseCandidates("I cannot produce test cases for this app.")
		assert.Error(t, err)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := parseCandidates(`{"testCases": []}`)
		assert.Error(t, err)
	})

	t.Run("too many rejected", func(t *testing.T) {
		payload := `{"testCases": [`
		for i := 0; i < 11; i++ {
			if i > 0 {
				payload += ","
			}
			payload += `{"title": "T", "description": "D", "expectedOutcome": "E"}`
		}
		payload += `]}`
		_, err := parseCandidates(payload)
		assert.Error(t, err)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		_, err := parseCandidates(`{"testCases": [{"title": " ", "description": "D", "expectedOutcome": "E"}]}`)
		assert.Error(t, err)
	})
}

func TestFirstJSONObject(t *testing.T) {
	obj, ok := firstJSONObject(`noise {"a": {"b": 1}} trailing`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, obj)

	obj, ok = firstJSONObject(`{"s": "brace } inside"}`)
	require.True(t, ok)
	assert.Equal(t, `{"s": "brace } inside"}`, obj)

	_, ok = firstJSONObject("nothing here")
	assert.False(t, ok)
}
