package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", EncodeDataURI("image/jpeg", []byte("hello")))
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", EncodeDataURI("", []byte("hello")),
		"empty media type should default to image/png")
}

func TestParseDataURI(t *testing.T) {
	t.Parallel()

	mimeType, data, err := ParseDataURI(EncodeDataURI("image/webp", []byte{0x1, 0x2, 0x3}))
	require.NoError(t, err)
	assert.Equal(t, "image/webp", mimeType)
	assert.Equal(t, []byte{0x1, 0x2, 0x3}, data)
}

func TestParseDataURI_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com/cat.png",
		"data:image/png,plain-text",
		"data:image/png;base64,@@not-base64@@",
	}

	for _, input := range inputs {
		_, _, err := ParseDataURI(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}
}
