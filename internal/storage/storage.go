package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strings"
	"time"

	"replink_backend/internal/config"
)

// Storage persists uploaded files and returns their public URL.
type Storage interface {
	// Save writes the file under the given object path and returns the URL
	// clients can fetch it from.
	Save(ctx context.Context, objectPath string, contentType string, r io.Reader) (string, error)
}

// NewStorage builds the backend selected in configuration.
func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL), nil
	case "supabase":
		return NewSupabaseStorage(cfg.Storage.Endpoint, cfg.Storage.APIKey, cfg.Storage.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

// ReportImagePath builds the object path for a report image:
// reports/<repID>/<gigID>/<timestamp>_<rand>.<ext>
func ReportImagePath(repID, gigID, filename string) string {
	return path.Join("reports", repID, gigID, uniqueName(filename))
}

// ProfilePicPath builds the object path for a rep's profile picture:
// pfp/<repID>/<timestamp>_<rand>.<ext>
func ProfilePicPath(repID, filename string) string {
	return path.Join("pfp", repID, uniqueName(filename))
}

func uniqueName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("%d_%06d%s", time.Now().UnixMilli(), rand.Intn(1000000), ext)
}
