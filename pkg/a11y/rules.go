package a11y

import (
	"fmt"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
)

// Rule checks an element tree for one category of defect and
// returns any violations found.
type Rule func(root *dom.Element) []Violation

// Built-in rule names.
const (
	RuleImageAlt      = "image-alt"
	RuleControlLabel  = "control-label"
	RuleLinkName      = "link-name"
	RuleButtonName    = "button-name"
	RuleDuplicateID   = "duplicate-id"
	RuleColorContrast = "color-contrast"
)

// builtinRules returns the default rule table.
func builtinRules() map[string]Rule {
	return map[string]Rule{
		RuleImageAlt:      checkImageAlt,
		RuleControlLabel:  checkControlLabel,
		RuleLinkName:      checkLinkName,
		RuleButtonName:    checkButtonName,
		RuleDuplicateID:   checkDuplicateID,
		RuleColorContrast: checkColorContrast,
	}
}

// checkImageAlt flags img elements without an alt attribute.
// An empty alt is allowed; it marks a decorative image.
func checkImageAlt(root *dom.Element) []Violation {
	var out []Violation
	root.Walk(func(el *dom.Element) bool {
		if el.Tag() != "img" {
			return true
		}
		if _, ok := el.Attr("alt"); !ok {
			out = append(out, Violation{
				Rule:        RuleImageAlt,
				Element:     elementLabel(el),
				Description: "image element has no alt attribute",
			})
		}
		return true
	})
	return out
}

// checkControlLabel flags form controls with no accessible
// name. Hidden inputs are exempt.
func checkControlLabel(root *dom.Element) []Violation {
	var out []Violation
	root.Walk(func(el *dom.Element) bool {
		switch el.Tag() {
		case "input", "select", "textarea":
		default:
			return true
		}
		if typ, _ := el.Attr("type"); typ == "hidden" {
			return true
		}
		if !hasAccessibleName(el) {
			out = append(out, Violation{
				Rule:    RuleControlLabel,
				Element: elementLabel(el),
				Description: "form control has no label or " +
					"aria-label",
			})
		}
		return true
	})
	return out
}

// checkLinkName flags anchors whose accessible name is empty.
func checkLinkName(root *dom.Element) []Violation {
	return checkDiscernibleText(
		root, "a", RuleLinkName,
		"link has no discernible text",
	)
}

// checkButtonName flags buttons whose accessible name is empty.
func checkButtonName(root *dom.Element) []Violation {
	return checkDiscernibleText(
		root, "button", RuleButtonName,
		"button has no discernible text",
	)
}

func checkDiscernibleText(
	root *dom.Element, tag, rule, description string,
) []Violation {
	var out []Violation
	root.Walk(func(el *dom.Element) bool {
		if el.Tag() != tag {
			return true
		}
		if el.TrimmedText() == "" && !hasAccessibleName(el) {
			out = append(out, Violation{
				Rule:        rule,
				Element:     elementLabel(el),
				Description: description,
			})
		}
		return true
	})
	return out
}

// checkDuplicateID flags every id value used by more than one
// element.
func checkDuplicateID(root *dom.Element) []Violation {
	seen := make(map[string]int)
	root.Walk(func(el *dom.Element) bool {
		if id := el.ID(); id != "" {
			seen[id]++
		}
		return true
	})

	var out []Violation
	root.Walk(func(el *dom.Element) bool {
		id := el.ID()
		if id != "" && seen[id] > 1 {
			out = append(out, Violation{
				Rule:    RuleDuplicateID,
				Element: elementLabel(el),
				Description: fmt.Sprintf(
					"id %q is used by %d elements",
					id, seen[id],
				),
			})
			// Report the id once, from its first occurrence.
			seen[id] = 0
		}
		return true
	})
	return out
}

// checkColorContrast flags text whose foreground/background
// contrast ratio falls below the WCAG AA threshold. Elements
// whose colors cannot be parsed are skipped. The background
// defaults to white when no ancestor paints one.
func checkColorContrast(root *dom.Element) []Violation {
	var out []Violation
	root.Walk(func(el *dom.Element) bool {
		if el.OwnText() == "" {
			return true
		}

		fg, ok := parseColor(el.InheritedStyle("color"))
		if !ok {
			return true
		}

		bgValue := el.InheritedStyle("background-color")
		bg := [3]uint8{255, 255, 255}
		if bgValue != "" {
			parsed, ok := parseColor(bgValue)
			if !ok {
				return true
			}
			bg = parsed
		}

		ratio := contrastRatio(fg, bg)
		if ratio < minContrastRatio {
			out = append(out, Violation{
				Rule:    RuleColorContrast,
				Element: elementLabel(el),
				Description: fmt.Sprintf(
					"contrast ratio %.2f is below %.1f",
					ratio, minContrastRatio,
				),
			})
		}
		return true
	})
	return out
}

// hasAccessibleName reports whether the element carries a
// non-empty aria-label or title attribute.
func hasAccessibleName(el *dom.Element) bool {
	if v, ok := el.Attr("aria-label"); ok && v != "" {
		return true
	}
	if v, ok := el.Attr("aria-labelledby"); ok && v != "" {
		return true
	}
	if v, ok := el.Attr("title"); ok && v != "" {
		return true
	}
	return false
}
