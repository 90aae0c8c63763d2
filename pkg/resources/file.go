package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// DefaultLocale is consulted when a bundle for the configured
// locale does not exist or lacks the requested name.
const DefaultLocale = "en-US"

// FileService answers lookups from locale bundle files named
// resources_<locale>.json inside a directory. Each bundle maps
// a resource name to an object with a "message" field:
//
//	{
//	  "greeting": {
//	    "_description": "Shown on the home page.",
//	    "message": "Hello, {0}!"
//	  }
//	}
//
// Bundles are loaded once on first use and cached.
type FileService struct {
	mu      sync.Mutex
	dir     string
	locale  string
	bundles map[string]map[string]string
}

// FileServiceOption configures a FileService.
type FileServiceOption func(*FileService)

// WithLocale sets the preferred locale. The default locale is
// always consulted as a fallback.
func WithLocale(locale string) FileServiceOption {
	return func(s *FileService) {
		s.locale = locale
	}
}

// NewFileService creates a FileService reading bundles from
// dir.
func NewFileService(
	dir string,
	opts ...FileServiceOption,
) *FileService {
	s := &FileService{
		dir:     dir,
		locale:  DefaultLocale,
		bundles: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetString resolves name from the configured locale's bundle,
// falling back to the default locale, and interpolates args.
func (s *FileService) GetString(
	ctx context.Context,
	name string,
	args ...any,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	locales := []string{s.locale}
	if s.locale != DefaultLocale {
		locales = append(locales, DefaultLocale)
	}

	for _, locale := range locales {
		bundle, err := s.bundle(locale)
		if err != nil {
			return "", err
		}
		if template, ok := bundle[name]; ok {
			return Format(template, args...), nil
		}
	}

	return "", fmt.Errorf(
		"%w for name %q (locale %s)",
		ErrMissingString, name, s.locale,
	)
}

// bundle loads and caches the bundle for a locale. A missing
// bundle file is treated as an empty bundle so the default
// locale can still answer.
func (s *FileService) bundle(
	locale string,
) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.bundles[locale]; ok {
		return b, nil
	}

	path := filepath.Join(
		s.dir,
		fmt.Sprintf("resources_%s.json", normalizeLocale(locale)),
	)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.bundles[locale] = map[string]string{}
			return s.bundles[locale], nil
		}
		return nil, fmt.Errorf(
			"failed to read resource bundle %s: %w", path, err,
		)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf(
			"resource bundle %s is not valid JSON", path,
		)
	}

	bundle := make(map[string]string)
	gjson.ParseBytes(data).ForEach(
		func(key, value gjson.Result) bool {
			bundle[key.String()] = value.Get("message").String()
			return true
		},
	)

	s.bundles[locale] = bundle
	return bundle, nil
}

// normalizeLocale converts locale identifiers such as "en-US"
// to the "en_US" form used in bundle file names.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}
