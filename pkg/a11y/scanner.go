package a11y

import (
	"context"
	"sort"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
)

// RuleScanner is the standard Scanner implementation. It runs
// a table of named rules over the element tree and aggregates
// violations into a ScanError.
type RuleScanner struct {
	rules  map[string]Rule
	logger logging.Logger
}

// ScannerOption configures a RuleScanner.
type ScannerOption func(*RuleScanner)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(logger logging.Logger) ScannerOption {
	return func(s *RuleScanner) {
		s.logger = logger
	}
}

// WithRule adds or replaces a named rule.
func WithRule(name string, rule Rule) ScannerOption {
	return func(s *RuleScanner) {
		s.rules[name] = rule
	}
}

// NewRuleScanner creates a RuleScanner with all built-in rules
// registered.
func NewRuleScanner(opts ...ScannerOption) *RuleScanner {
	s := &RuleScanner{
		rules:  builtinRules(),
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RuleNames returns the registered rule names, sorted.
func (s *RuleScanner) RuleNames() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scan runs every rule enabled by cfg against the element tree
// rooted at el. It returns nil when the tree is clean, or a
// *ScanError listing each violation. Rules run in sorted name
// order so reports are stable.
func (s *RuleScanner) Scan(
	ctx context.Context,
	el *dom.Element,
	cfg *Config,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var violations []Violation
	for _, name := range s.RuleNames() {
		if !cfg.Enabled(name) {
			s.logger.Debug("rule disabled",
				logging.StringField("rule", name),
			)
			continue
		}
		found := s.rules[name](el)
		if len(found) > 0 {
			s.logger.Debug("rule found violations",
				logging.StringField("rule", name),
				logging.IntField("count", len(found)),
			)
		}
		violations = append(violations, found...)
	}

	if len(violations) == 0 {
		return nil
	}
	return &ScanError{Violations: violations}
}
