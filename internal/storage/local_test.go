package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/api/v1/files/")

	objectPath := ReportImagePath("rep-1", "gig-1", "shelf.jpg")
	url, err := s.Save(context.Background(), objectPath, "image/jpeg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/files/"+objectPath, url)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(objectPath)))
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
}

func TestReportImagePath(t *testing.T) {
	p := ReportImagePath("rep-1", "gig-1", "IMG_0042.JPG")
	assert.True(t, strings.HasPrefix(p, "reports/rep-1/gig-1/"))
	assert.True(t, strings.HasSuffix(p, ".jpg"), "extension is lowercased: %s", p)

	// Names are unique per call.
	assert.NotEqual(t, p, ReportImagePath("rep-1", "gig-1", "IMG_0042.JPG"))
}

func TestProfilePicPath(t *testing.T) {
	p := ProfilePicPath("rep-1", "avatar")
	assert.True(t, strings.HasPrefix(p, "pfp/rep-1/"))
	assert.True(t, strings.HasSuffix(p, ".bin"), "missing extension falls back: %s", p)
}

func TestNewStorageUnknownType(t *testing.T) {
	cfg := testConfig("tape")
	_, err := NewStorage(cfg)
	assert.Error(t, err)

	cfg = testConfig("local")
	s, err := NewStorage(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)
}
