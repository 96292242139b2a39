package textsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc d", normalize("a\t\tb\r\nc   d"))
	assert.Equal(t, "line", normalize("line"))
	assert.Equal(t, "", normalize(""))
}

func TestNormalizeDropsBoxNoise(t *testing.T) {
	got := normalize("Transfer Successful\n----------\nJOHN TAN\n___\nRM50.00")

	assert.Equal(t, []string{"Transfer Successful", "JOHN TAN", "RM50.00"}, splitLines(got))
}

func TestSplitLinesTrimsAndDropsEmpty(t *testing.T) {
	lines := splitLines("  first  \n\n\n second\n   \nthird")

	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestMakeRawText(t *testing.T) {
	raw, err := makeRawText("Sender\r\nJOHN  TAN\n", "image-ocr", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Sender", "JOHN TAN"}, raw.Lines)
	assert.Equal(t, "Sender\nJOHN TAN", raw.FullText)
	assert.Equal(t, "image-ocr", raw.Method)
}

func TestMakeRawTextEmptyIsErrNoText(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n", "------\n"} {
		_, err := makeRawText(text, "image-ocr", nil)
		assert.True(t, errors.Is(err, ErrNoText), "text %q", text)
	}
}
