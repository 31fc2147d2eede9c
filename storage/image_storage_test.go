package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature followed by enough of an IHDR chunk
// for content sniffing to recognize the format.
var pngHeader = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R',
}

func newTestStorage(t *testing.T, maxUploadMB int64) *ImageStorage {
	t.Helper()
	s, err := NewImageStorage(t.TempDir(), maxUploadMB)
	require.NoError(t, err)
	return s
}

func TestSaveAcceptsImageAndReturnsReferencePath(t *testing.T) {
	s := newTestStorage(t, 10)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 512)...)
	ref, err := s.Save(context.Background(), "profile", "avatar.png", bytes.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/profile/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	onDisk := filepath.Join(s.Root(), strings.TrimPrefix(ref, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestSaveDerivesExtensionFromContent(t *testing.T) {
	s := newTestStorage(t, 10)

	ref, err := s.Save(context.Background(), "projects", "noext", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"))
}

func TestSaveRejectsNonImageContent(t *testing.T) {
	s := newTestStorage(t, 10)

	_, err := s.Save(context.Background(), "profile", "script.png", strings.NewReader("#!/bin/sh\necho hi\n"))
	assert.Error(t, err)
}

func TestSaveEnforcesSizeCap(t *testing.T) {
	s := newTestStorage(t, 1)

	oversized := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2*1024*1024)...)
	_, err := s.Save(context.Background(), "profile", "huge.png", bytes.NewReader(oversized))
	assert.Error(t, err)

	// Nothing should be left behind on disk.
	entries, err := os.ReadDir(filepath.Join(s.Root(), "profile"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	s := newTestStorage(t, 10)

	ref, err := s.Save(context.Background(), "certificates", "cert.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), ref))

	onDisk := filepath.Join(s.Root(), strings.TrimPrefix(ref, "/uploads/"))
	_, statErr := os.Stat(onDisk)
	assert.True(t, os.IsNotExist(statErr))

	// Deleting an already-missing reference is fine.
	assert.NoError(t, s.Delete(context.Background(), ref))
}
