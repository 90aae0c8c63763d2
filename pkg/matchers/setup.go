package matchers

import (
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/env"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/resources"
)

// InstallFromEnv registers the built-in factories into the
// default registry and wires its resource service from
// SKYUX_* environment settings. When no resources directory is
// configured the resource text matchers stay unwired, exactly
// as with a plain Install.
func InstallFromEnv(loader env.Loader) {
	settings := env.ReadSettings(loader)
	if settings.ResourcesDir != "" {
		opts := []resources.FileServiceOption{}
		if settings.Locale != "" {
			opts = append(
				opts, resources.WithLocale(settings.Locale),
			)
		}
		Default.SetResources(
			resources.NewFileService(settings.ResourcesDir, opts...),
		)
	}
	Install()
}
