package storage

import "context"

// FileStore is the durable file storage collaborator. Save returns the
// relative path under which the bytes were stored; Delete is idempotent and
// deleting a missing file is not an error.
type FileStore interface {
	Save(ctx context.Context, data []byte, filename string) (string, error)
	Delete(ctx context.Context, relativePath string) error
}

// allowedMimeTypes is the accepted set for appointment slips.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/gif":       {},
}

// IsValidType reports whether the declared mimetype is acceptable.
func IsValidType(mimetype string) bool {
	_, ok := allowedMimeTypes[mimetype]
	return ok
}

// IsValidSize reports whether size fits within max bytes.
func IsValidSize(size, max int64) bool {
	return size > 0 && size <= max
}
