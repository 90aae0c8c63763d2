package resources

import (
	"context"
	"fmt"
)

// MapService answers lookups from an in-memory map of resource
// name to template. It is the simplest Service implementation,
// intended for suites that do not ship bundle files.
type MapService struct {
	strings map[string]string
}

// NewMapService creates a MapService over the given templates.
// The map is copied.
func NewMapService(strings map[string]string) *MapService {
	copied := make(map[string]string, len(strings))
	for k, v := range strings {
		copied[k] = v
	}
	return &MapService{strings: copied}
}

// GetString resolves name from the map and interpolates args.
func (s *MapService) GetString(
	ctx context.Context,
	name string,
	args ...any,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	template, ok := s.strings[name]
	if !ok {
		return "", fmt.Errorf(
			"%w for name %q", ErrMissingString, name,
		)
	}
	return Format(template, args...), nil
}
