package imageenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func TestEncodeFile_PNG(t *testing.T) {
	out, err := EncodeFile(pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
}

func TestEncodeFile_GIF(t *testing.T) {
	out, err := EncodeFile([]byte("GIF89a lots of pixels"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/gif;base64,"))
}

func TestEncodeFile_RejectsNonImage(t *testing.T) {
	_, err := EncodeFile([]byte("just some text"))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = EncodeFile(nil)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestEncodeFile_RejectsOversized(t *testing.T) {
	huge := make([]byte, MaxImageBytes+1)
	copy(huge, pngHeader)
	_, err := EncodeFile(huge)
	assert.ErrorIs(t, err, ErrTooLarge)
}
