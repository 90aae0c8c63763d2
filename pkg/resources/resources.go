// Package resources resolves localized resource strings by key,
// the lookup half of the resource-text matchers. A Service
// implementation may answer from memory, from locale bundle
// files on disk, or from anywhere else; the matchers only see
// GetString.
package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingString indicates that no resource string exists for
// the requested name in any consulted locale.
var ErrMissingString = errors.New("no resource string found")

// Service defines the interface for resource string lookup.
type Service interface {
	// GetString resolves the template registered under name
	// and interpolates the given arguments into it.
	GetString(
		ctx context.Context,
		name string,
		args ...any,
	) (string, error)
}

// Format interpolates positional arguments into a resource
// template. Placeholders use the {0}, {1}, ... form. A
// placeholder with no matching argument is left untouched.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	out := template
	for i, arg := range args {
		out = strings.ReplaceAll(
			out,
			fmt.Sprintf("{%d}", i),
			fmt.Sprintf("%v", arg),
		)
	}
	return out
}
