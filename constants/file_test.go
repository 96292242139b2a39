package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedPath(t *testing.T) {
	assert.True(t, IsAllowedPath("receipt.jpg"))
	assert.True(t, IsAllowedPath("Receipt.JPG"))
	assert.True(t, IsAllowedPath("/some/dir/scan.PDF"))
	assert.False(t, IsAllowedPath("notes.txt"))
	assert.False(t, IsAllowedPath("archive.zip"))
	assert.False(t, IsAllowedPath("noextension"))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, PDF, MapExtToFormat("PDF"))
	assert.Equal(t, IMAGE, MapExtToFormat(".jpeg"))
	assert.Equal(t, IMAGE, MapExtToFormat(".PNG"))
	assert.Equal(t, "", MapExtToFormat(".txt"))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusSuccessManual.Terminal())
	assert.True(t, StatusNoName.Terminal())
	assert.False(t, StatusNoText.Terminal())
	assert.False(t, StatusRenameFailed.Terminal())
	assert.False(t, StatusSkipped.Terminal())
	assert.False(t, StatusError.Terminal())
}
