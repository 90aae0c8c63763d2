package a11y

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleScanner_CleanTree(t *testing.T) {
	root := dom.NewElement("div").Append(
		dom.NewElement("img").WithAttr("alt", "Logo"),
		dom.NewElement("button").WithText("Save"),
		dom.NewElement("a").WithText("Home"),
	)

	s := NewRuleScanner()
	assert.NoError(t, s.Scan(context.Background(), root, nil))
}

func TestRuleScanner_ImageAlt(t *testing.T) {
	root := dom.NewElement("div").Append(
		dom.NewElement("img").WithAttr("src", "x.png"),
	)

	s := NewRuleScanner()
	err := s.Scan(context.Background(), root, nil)

	require.Error(t, err)
	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	require.Len(t, scanErr.Violations, 1)
	assert.Equal(t, RuleImageAlt, scanErr.Violations[0].Rule)
	assert.Contains(t, err.Error(), "1 violation(s) found")
	assert.Contains(t, err.Error(), "no alt attribute")
}

func TestRuleScanner_DecorativeImageAllowed(t *testing.T) {
	root := dom.NewElement("img").WithAttr("alt", "")

	s := NewRuleScanner()
	assert.NoError(t, s.Scan(context.Background(), root, nil))
}

func TestRuleScanner_ControlLabel(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Element
		ok   bool
	}{
		{
			"unlabeled input",
			dom.NewElement("input"),
			false,
		},
		{
			"aria-label",
			dom.NewElement("input").
				WithAttr("aria-label", "Search"),
			true,
		},
		{
			"title",
			dom.NewElement("select").
				WithAttr("title", "Country"),
			true,
		},
		{
			"hidden input exempt",
			dom.NewElement("input").
				WithAttr("type", "hidden"),
			true,
		},
	}

	s := NewRuleScanner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Scan(context.Background(), tt.el, nil)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(
					t, err.Error(), RuleControlLabel,
				)
			}
		})
	}
}

func TestRuleScanner_LinkAndButtonName(t *testing.T) {
	root := dom.NewElement("nav").Append(
		dom.NewElement("a").WithAttr("href", "/"),
		dom.NewElement("button"),
	)

	s := NewRuleScanner()
	err := s.Scan(context.Background(), root, nil)

	require.Error(t, err)
	scanErr := err.(*ScanError)
	require.Len(t, scanErr.Violations, 2)
	assert.Contains(t, err.Error(), "link has no discernible text")
	assert.Contains(t, err.Error(), "button has no discernible text")
}

func TestRuleScanner_DuplicateID(t *testing.T) {
	root := dom.NewElement("div").Append(
		dom.NewElement("span").WithAttr("id", "twin"),
		dom.NewElement("span").WithAttr("id", "twin"),
		dom.NewElement("span").WithAttr("id", "solo"),
	)

	s := NewRuleScanner()
	err := s.Scan(context.Background(), root, nil)

	require.Error(t, err)
	scanErr := err.(*ScanError)
	require.Len(t, scanErr.Violations, 1)
	assert.Contains(
		t, scanErr.Violations[0].Description,
		`id "twin" is used by 2 elements`,
	)
}

func TestRuleScanner_ColorContrast(t *testing.T) {
	lowContrast := dom.NewElement("p").
		WithStyle("color", "#777777").
		WithStyle("background-color", "#888888").
		WithText("hard to read")

	s := NewRuleScanner()
	err := s.Scan(context.Background(), lowContrast, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), RuleColorContrast)
	assert.Contains(t, err.Error(), "below 4.5")
}

func TestRuleScanner_ContrastUsesInheritedBackground(t *testing.T) {
	root := dom.NewElement("div").
		WithStyle("background-color", "black").
		Append(
			dom.NewElement("p").
				WithStyle("color", "white").
				WithText("fine"),
		)

	s := NewRuleScanner()
	assert.NoError(t, s.Scan(context.Background(), root, nil))
}

func TestRuleScanner_ConfigDisablesRule(t *testing.T) {
	root := dom.NewElement("img")

	cfg := &Config{
		Rules: map[string]RuleOptions{
			RuleImageAlt: {Enabled: false},
		},
	}

	s := NewRuleScanner()
	assert.NoError(t, s.Scan(context.Background(), root, cfg))
	assert.Error(t, s.Scan(context.Background(), root, nil))
}

func TestRuleScanner_CustomRule(t *testing.T) {
	always := func(root *dom.Element) []Violation {
		return []Violation{{
			Rule:        "always-fails",
			Element:     "div",
			Description: "synthetic",
		}}
	}

	s := NewRuleScanner(WithRule("always-fails", always))
	err := s.Scan(
		context.Background(), dom.NewElement("div"), nil,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthetic")
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"rules:\n  color-contrast:\n    enabled: false\n",
	), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled(RuleColorContrast))
	assert.True(t, cfg.Enabled(RuleImageAlt))
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"rules": {"image-alt": {"enabled": false}}}`,
	), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled(RuleImageAlt))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scan config")
}
