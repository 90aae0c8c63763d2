// Package a11y scans element trees for accessibility defects.
// It backs the accessible matcher: a scan either comes back
// clean or produces an error whose message lists each violation
// found. Rules can be switched off per scan through a Config,
// loadable from a YAML or JSON file.
package a11y

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
	"gopkg.in/yaml.v3"
)

// Scanner defines the interface for accessibility scanning.
// A nil error means the element tree passed every enabled rule.
type Scanner interface {
	Scan(
		ctx context.Context,
		el *dom.Element,
		cfg *Config,
	) error
}

// Violation describes a single accessibility defect.
type Violation struct {
	// Rule is the name of the rule that was broken.
	Rule string

	// Element identifies the offending element, e.g.
	// "img#logo.banner".
	Element string

	// Description explains what is wrong.
	Description string
}

// String renders the violation as a single report line.
func (v Violation) String() string {
	return fmt.Sprintf(
		"%s (%s): %s", v.Rule, v.Element, v.Description,
	)
}

// Config controls which rules a scan applies. A nil Config, or
// a rule with no entry, leaves the rule enabled.
type Config struct {
	// Rules maps rule name to its settings.
	Rules map[string]RuleOptions `json:"rules" yaml:"rules"`
}

// RuleOptions holds per-rule settings.
type RuleOptions struct {
	// Enabled switches the rule on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Enabled reports whether the named rule should run under this
// configuration.
func (c *Config) Enabled(rule string) bool {
	if c == nil || c.Rules == nil {
		return true
	}
	opts, ok := c.Rules[rule]
	if !ok {
		return true
	}
	return opts.Enabled
}

// LoadConfig reads a scan configuration from a YAML file. JSON
// files parse too, since YAML is a superset of JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read scan config %s: %w", path, err,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse scan config %s: %w", path, err,
		)
	}
	return &cfg, nil
}

// ScanError aggregates the violations found by a scan. Its
// message is what the accessible matcher forwards verbatim to
// the test runner's failure primitive.
type ScanError struct {
	// Violations holds every defect found, in rule order.
	Violations []Violation
}

// Error formats the violation report.
func (e *ScanError) Error() string {
	var b strings.Builder
	fmt.Fprintf(
		&b,
		"Expected element to pass accessibility checks.\n\n%d violation(s) found:\n",
		len(e.Violations),
	)
	for _, v := range e.Violations {
		b.WriteString("- ")
		b.WriteString(v.String())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// elementLabel renders a short identifier for an element, of
// the form tag#id.class1.class2.
func elementLabel(el *dom.Element) string {
	var b strings.Builder
	b.WriteString(el.Tag())
	if id := el.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, c := range el.ClassList() {
		b.WriteString(".")
		b.WriteString(c)
	}
	return b.String()
}
