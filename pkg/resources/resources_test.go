package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			"no args",
			"Hello", nil, "Hello",
		},
		{
			"single arg",
			"Hello, {0}!", []any{"Jane"}, "Hello, Jane!",
		},
		{
			"repeated placeholder",
			"{0} and {0}", []any{"x"}, "x and x",
		},
		{
			"multiple args",
			"{1} then {0}", []any{1, 2}, "2 then 1",
		},
		{
			"unmatched placeholder left alone",
			"Hi {0} {1}", []any{"a"}, "Hi a {1}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.template, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapService_GetString(t *testing.T) {
	svc := NewMapService(map[string]string{
		"greeting": "Hello, {0}!",
	})

	got, err := svc.GetString(
		context.Background(), "greeting", "Jane",
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Jane!", got)
}

func TestMapService_GetString_MissingName(t *testing.T) {
	svc := NewMapService(nil)

	_, err := svc.GetString(context.Background(), "absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingString)
	assert.Contains(t, err.Error(), "absent")
}

func writeBundle(
	t *testing.T, dir, locale, content string,
) {
	t.Helper()
	path := filepath.Join(dir, "resources_"+locale+".json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileService_GetString(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en_US", `{
		"greeting": {
			"_description": "Shown on the home page.",
			"message": "Hello, {0}!"
		}
	}`)

	svc := NewFileService(dir)
	got, err := svc.GetString(
		context.Background(), "greeting", "Jane",
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Jane!", got)
}

func TestFileService_LocaleFallback(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en_US", `{
		"only_default": {"message": "default"}
	}`)
	writeBundle(t, dir, "fr_FR", `{
		"greeting": {"message": "Bonjour"}
	}`)

	svc := NewFileService(dir, WithLocale("fr-FR"))

	got, err := svc.GetString(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", got)

	got, err = svc.GetString(
		context.Background(), "only_default",
	)
	require.NoError(t, err)
	assert.Equal(t, "default", got)
}

func TestFileService_MissingName(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en_US", `{}`)

	svc := NewFileService(dir)
	_, err := svc.GetString(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingString)
	assert.Contains(t, err.Error(), "ghost")
}

func TestFileService_MissingBundleActsEmpty(t *testing.T) {
	svc := NewFileService(t.TempDir())

	_, err := svc.GetString(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrMissingString)
}

func TestFileService_InvalidBundle(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en_US", "{broken")

	svc := NewFileService(dir)
	_, err := svc.GetString(context.Background(), "greeting")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestFileService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewFileService(t.TempDir())
	_, err := svc.GetString(ctx, "greeting")
	assert.ErrorIs(t, err, context.Canceled)
}
