package matchers

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
)

// Registered names of the built-in matchers.
const (
	NameVisible                = "visible"
	NameExists                 = "exists"
	NameHasCssClass            = "hasCssClass"
	NameHasStyle               = "hasStyle"
	NameHasText                = "hasText"
	NameAccessible             = "accessible"
	NameResourceTextEquals     = "resourceTextEquals"
	NameElementHasResourceText = "elementHasResourceText"
)

// toElement coerces the actual value to an element, or reports
// a malformed call.
func toElement(actual any, matcher string) (*dom.Element, error) {
	el, ok := actual.(*dom.Element)
	if !ok || el == nil {
		return nil, &ArgumentError{
			Matcher: matcher,
			Reason: fmt.Sprintf(
				"actual value must be a *dom.Element, got %T",
				actual,
			),
		}
	}
	return el, nil
}

// compareVisible passes when the element's computed display
// style is anything but "none".
func compareVisible(
	_ Context, actual any, _ ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameVisible)
	if err != nil {
		return Comparison{}, err
	}

	if el.Visible() {
		return Comparison{
			Pass:    true,
			Message: "Expected element to not be visible",
		}, nil
	}
	return Comparison{
		Pass:    false,
		Message: "Expected element to be visible",
	}, nil
}

// compareExists passes when the actual value is truthy: not
// nil, not false, not zero, and not an empty string.
func compareExists(
	_ Context, actual any, _ ...any,
) (Comparison, error) {
	if truthy(actual) {
		return Comparison{
			Pass:    true,
			Message: "Expected value to not exist",
		}, nil
	}
	return Comparison{
		Pass:    false,
		Message: "Expected value to exist",
	}, nil
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return !reflect.ValueOf(t).IsZero()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// compareHasCssClass passes when the element's class list
// contains the given class name. A class name with a leading
// selector dot is a malformed call, not a failed comparison.
func compareHasCssClass(
	_ Context, actual any, args ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameHasCssClass)
	if err != nil {
		return Comparison{}, err
	}

	className, err := stringArg(args, 0, NameHasCssClass, "class name")
	if err != nil {
		return Comparison{}, err
	}
	if strings.HasPrefix(className, ".") {
		return Comparison{}, &ArgumentError{
			Matcher: NameHasCssClass,
			Reason: "please remove the leading dot from " +
				"your class name",
		}
	}

	if el.HasClass(className) {
		return Comparison{
			Pass: true,
			Message: fmt.Sprintf(
				"Expected element to not have CSS class %q",
				className,
			),
		}, nil
	}
	return Comparison{
		Pass: false,
		Message: fmt.Sprintf(
			"Expected element to have CSS class %q", className,
		),
	}, nil
}

// compareHasStyle checks every requested style property against
// the element's computed style. It never short-circuits: each
// property contributes its own line to the message so a failure
// report is complete, with an actual-value line for every
// mismatch. Overall pass is the conjunction over all
// properties.
func compareHasStyle(
	_ Context, actual any, args ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameHasStyle)
	if err != nil {
		return Comparison{}, err
	}

	styles, err := styleArg(args, NameHasStyle)
	if err != nil {
		return Comparison{}, err
	}

	pass := true
	var lines []string
	for _, entry := range styles.Entries() {
		actualValue := el.ComputedStyle(entry.Name)
		if actualValue == entry.Value {
			lines = append(lines, fmt.Sprintf(
				"Expected element to not have CSS style %q on property %q",
				entry.Value, entry.Name,
			))
			continue
		}
		pass = false
		lines = append(lines, fmt.Sprintf(
			"Expected element to have CSS style %q on property %q",
			entry.Value, entry.Name,
		))
		lines = append(lines, fmt.Sprintf(
			"Actual style is %q", actualValue,
		))
	}

	return Comparison{
		Pass:    pass,
		Message: strings.Join(lines, "\n"),
	}, nil
}

// compareHasText passes when the element's text content equals
// the expected text. Whitespace is trimmed unless the optional
// second argument is false.
func compareHasText(
	_ Context, actual any, args ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameHasText)
	if err != nil {
		return Comparison{}, err
	}

	expected, err := stringArg(args, 0, NameHasText, "expected text")
	if err != nil {
		return Comparison{}, err
	}

	trim := true
	if len(args) > 1 {
		flag, ok := args[1].(bool)
		if !ok {
			return Comparison{}, &ArgumentError{
				Matcher: NameHasText,
				Reason: fmt.Sprintf(
					"trim flag must be a bool, got %T", args[1],
				),
			}
		}
		trim = flag
	}

	text := el.Text()
	if trim {
		text = el.TrimmedText()
	}

	if text == expected {
		return Comparison{
			Pass: true,
			Message: fmt.Sprintf(
				"Expected element text to not be %q", expected,
			),
		}, nil
	}
	return Comparison{
		Pass: false,
		Message: fmt.Sprintf(
			"Expected element text to be %q, was %q",
			expected, text,
		),
	}, nil
}

// stringArg extracts a required string argument.
func stringArg(
	args []any, i int, matcher, what string,
) (string, error) {
	if len(args) <= i {
		return "", &ArgumentError{
			Matcher: matcher,
			Reason:  fmt.Sprintf("missing %s argument", what),
		}
	}
	s, ok := args[i].(string)
	if !ok {
		return "", &ArgumentError{
			Matcher: matcher,
			Reason: fmt.Sprintf(
				"%s must be a string, got %T", what, args[i],
			),
		}
	}
	return s, nil
}

// styleArg extracts the style expectation map. A *dom.StyleMap
// keeps its insertion order; a plain map[string]string is
// accepted too and iterated in sorted key order for stable
// messages.
func styleArg(args []any, matcher string) (*dom.StyleMap, error) {
	if len(args) == 0 {
		return nil, &ArgumentError{
			Matcher: matcher,
			Reason:  "missing style expectation argument",
		}
	}

	switch v := args[0].(type) {
	case *dom.StyleMap:
		return v, nil
	case map[string]string:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		m := dom.NewStyleMap()
		for _, name := range names {
			m.Set(name, v[name])
		}
		return m, nil
	default:
		return nil, &ArgumentError{
			Matcher: matcher,
			Reason: fmt.Sprintf(
				"style expectation must be a *dom.StyleMap or map[string]string, got %T",
				args[0],
			),
		}
	}
}
