package env

// Environment variable names recognized by the SDK.
const (
	// KeyLocale selects the preferred resource bundle locale.
	KeyLocale = "SKYUX_LOCALE"

	// KeyResourcesDir points at the directory holding
	// resources_<locale>.json bundles.
	KeyResourcesDir = "SKYUX_RESOURCES_DIR"

	// KeyLogLevel sets the minimum logging severity.
	KeyLogLevel = "SKYUX_LOG_LEVEL"

	// KeyMonitorAddr is the listen address for the run
	// monitor's websocket server.
	KeyMonitorAddr = "SKYUX_MONITOR_ADDR"
)

// DefaultMonitorAddr is used when KeyMonitorAddr is unset.
const DefaultMonitorAddr = "localhost:8787"

// Settings is the SDK configuration resolved from the process
// environment.
type Settings struct {
	// Locale is the preferred resource bundle locale, or ""
	// when the default locale applies.
	Locale string

	// ResourcesDir is the bundle directory, or "" when no
	// file-backed resource service is configured.
	ResourcesDir string

	// LogLevel is the logging severity name.
	LogLevel string

	// MonitorAddr is the run monitor listen address.
	MonitorAddr string
}

// ReadSettings resolves Settings from a Loader.
func ReadSettings(l Loader) Settings {
	return Settings{
		Locale:       l.Get(KeyLocale),
		ResourcesDir: l.Get(KeyResourcesDir),
		LogLevel:     l.GetWithDefault(KeyLogLevel, "INFO"),
		MonitorAddr: l.GetWithDefault(
			KeyMonitorAddr, DefaultMonitorAddr,
		),
	}
}
