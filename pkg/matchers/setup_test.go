package matchers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallFromEnv_WiresFileResources(t *testing.T) {
	dir := t.TempDir()
	bundle := `{"greeting": {"message": "Bonjour"}}`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "resources_fr_FR.json"),
		[]byte(bundle),
		0o644,
	))

	t.Setenv(env.KeyResourcesDir, dir)
	t.Setenv(env.KeyLocale, "fr-FR")
	defer Default.SetResources(nil)

	InstallFromEnv(env.NewLoader())

	assert.True(t, Default.Has(NameResourceTextEquals))

	sink := &recordingSink{}
	wait := make(chan struct{})
	Expect(sink, "Bonjour").To(
		NameResourceTextEquals,
		"greeting",
		func() { close(wait) },
	)
	<-wait

	assert.Empty(t, sink.Messages())
}

func TestInstallFromEnv_NoResourcesDir(t *testing.T) {
	defer Default.SetResources(nil)

	InstallFromEnv(env.NewLoader())

	assert.True(t, Default.Has(NameVisible))
}
