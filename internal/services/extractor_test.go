package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "bare object",
			raw:  `{"JD Match": "70%"}`,
			want: map[string]any{"JD Match": "70%"},
		},
		{
			name: "prose around object",
			raw:  `Here is the result: {"JD Match": "70%"} Hope this helps.`,
			want: map[string]any{"JD Match": "70%"},
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"question\": \"Why Go?\"}\n```",
			want: map[string]any{"question": "Why Go?"},
		},
		{
			name: "nested object",
			raw:  `{"questions": [{"question": "a", "ideal_answer": "b"}]}`,
			want: map[string]any{"questions": []any{map[string]any{"question": "a", "ideal_answer": "b"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	raw := "I cannot evaluate this resume."

	_, err := ExtractJSON(raw)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJSONFound))
	assert.Equal(t, raw, RawResponse(err))
}

func TestExtractJSON_ClosingBraceBeforeOpening(t *testing.T) {
	_, err := ExtractJSON("} then {")

	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSON_Malformed(t *testing.T) {
	raw := `{"JD Match": "70%",}`

	_, err := ExtractJSON(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedJSON)
	assert.Equal(t, raw, RawResponse(err))
}

func TestExtractJSON_TwoObjectsFail(t *testing.T) {
	_, err := ExtractJSON(`{"a": 1} and also {"b": 2}`)

	assert.ErrorIs(t, err, ErrMalformedJSON)
}
