package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRetrieveRoundTrip(t *testing.T) {
	svc := NewService(t.TempDir())
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	fileURL, err := svc.Store(content, "photo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fileURL, URLPrefix))
	assert.True(t, strings.HasSuffix(fileURL, ".png"))

	filename := strings.TrimPrefix(fileURL, URLPrefix)
	data, contentType, err := svc.Retrieve(filename)
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, "image/png", contentType)
}

func TestStoreCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	svc := NewService(base)

	fileURL, err := svc.Store([]byte("x"), "doc.pdf")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, strings.TrimPrefix(fileURL, URLPrefix)))
	assert.NoError(t, err)
}

func TestStoreWithoutExtension(t *testing.T) {
	svc := NewService(t.TempDir())

	fileURL, err := svc.Store([]byte("raw"), "noext")
	require.NoError(t, err)
	assert.NotContains(t, strings.TrimPrefix(fileURL, URLPrefix), ".")
}

func TestRetrieveRejectsTraversal(t *testing.T) {
	svc := NewService(t.TempDir())

	for _, key := range []string{
		"../../etc/passwd",
		"a/b.png",
		`a\b.png`,
		"..",
		"",
	} {
		t.Run(key, func(t *testing.T) {
			_, _, err := svc.Retrieve(key)
			assert.ErrorIs(t, err, ErrInvalidFilename)
		})
	}
}

func TestRetrieveMissingFile(t *testing.T) {
	svc := NewService(t.TempDir())

	_, _, err := svc.Retrieve("nonexistent.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.JPEG"))
	assert.Equal(t, "image/png", ContentTypeFor("a.png"))
	assert.Equal(t, "application/pdf", ContentTypeFor("a.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a.bin"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("noext"))
}
