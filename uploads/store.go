package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PlaceholderRef is the reserved image reference used for projects without a
// custom uploaded image. It is never written or deleted by the store.
const PlaceholderRef = "/uploads/placeholder.jpg"

// DefaultMaxBytes caps uploads at 5 MiB.
const DefaultMaxBytes = 5 << 20

// publicPrefix is the path prefix under which stored references are served.
const publicPrefix = "/uploads/"

// allowedExtensions maps the accepted file extensions to the MIME subtypes
// they may be declared as.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AllowedTypes lists the accepted image types, for error messages and docs.
var AllowedTypes = []string{"jpeg", "jpg", "png", "gif", "webp"}

// Config carries the store's injected settings so tests can point it at a
// temporary directory.
type Config struct {
	Root     string // directory uploads are written to
	MaxBytes int64  // per-file size cap; DefaultMaxBytes when zero
}

// Store persists uploaded image files under a single root directory. File
// references it hands out are public relative paths ("/uploads/project-...").
type Store struct {
	root     string
	maxBytes int64
	logger   zerolog.Logger
}

func New(cfg Config) *Store {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &Store{
		root:     cfg.Root,
		maxBytes: maxBytes,
		logger:   log.With().Str("component", "uploadStore").Logger(),
	}
}

// MaxBytes returns the configured per-file size cap.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Store validates and persists an uploaded image, returning its public
// reference. Both the file extension and the declared content type must be in
// the allowed image set, and the payload must not exceed the size cap. Nothing
// is written when validation fails.
func (s *Store) Store(data []byte, originalFilename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] {
		return "", errs.NewUnsupportedMediaTypeError(ext, AllowedTypes)
	}
	if !allowedMediaTypes[strings.ToLower(contentType)] {
		return "", errs.NewUnsupportedMediaTypeError(contentType, AllowedTypes)
	}
	if int64(len(data)) > s.maxBytes {
		return "", errs.NewMaxBodySizeExceededError(s.maxBytes)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	// uuid suffixes make collisions vanishingly unlikely; the stat loop makes
	// them impossible.
	var filename string
	for {
		filename = fmt.Sprintf("project-%s%s", uuid.NewString(), ext)
		if _, err := os.Stat(filepath.Join(s.root, filename)); errors.Is(err, fs.ErrNotExist) {
			break
		}
	}

	if err := os.WriteFile(filepath.Join(s.root, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload %s: %w", filename, err)
	}

	ref := publicPrefix + filename
	s.logger.Info().Str("ref", ref).Int("bytes", len(data)).Msg("stored upload")
	return ref, nil
}

// Delete removes the file behind ref. It is idempotent: the placeholder
// reference, unknown references, and already-absent files are all no-ops.
func (s *Store) Delete(ref string) error {
	if IsPlaceholder(ref) {
		return nil
	}

	path, ok := s.path(ref)
	if !ok {
		return nil
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("removing upload %s: %w", ref, err)
	}

	s.logger.Info().Str("ref", ref).Msg("deleted upload")
	return nil
}

// Exists reports whether ref resolves to a file currently in the store.
func (s *Store) Exists(ref string) bool {
	path, ok := s.path(ref)
	if !ok {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// path maps a public reference back to a file under the store root. References
// outside the public prefix or carrying path separators are rejected.
func (s *Store) path(ref string) (string, bool) {
	if !strings.HasPrefix(ref, publicPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(ref, publicPrefix)
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	return filepath.Join(s.root, name), true
}

// IsPlaceholder reports whether ref is the reserved placeholder reference.
func IsPlaceholder(ref string) bool {
	return ref == PlaceholderRef
}
