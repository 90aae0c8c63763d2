package runner

// T is the subset of *testing.T the adapter needs.
type T interface {
	Helper()
	Error(args ...any)
}

// TAdapter turns a *testing.T into a fail sink for the matcher
// expectations, so suites can use the SDK matchers directly
// inside ordinary Go tests without a Suite.
type TAdapter struct {
	t T
}

// ForTesting wraps t as a fail sink.
func ForTesting(t T) *TAdapter {
	return &TAdapter{t: t}
}

// Fail reports the message as a test error.
func (a *TAdapter) Fail(message string) {
	a.t.Helper()
	a.t.Error(message)
}
