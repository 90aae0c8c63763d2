package matchers

import (
	"fmt"
	"reflect"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
)

// Expectation wraps an actual value with the comparison surface
// of the SDK: a few native predicates plus every matcher
// registered in the owning Registry. Each predicate reports to
// the fail sink and returns the effective outcome.
type Expectation struct {
	registry *Registry
	sink     FailSink
	actual   any
	negated  bool
}

// Expect starts an expectation on actual, reporting failures
// to sink.
func (r *Registry) Expect(sink FailSink, actual any) *Expectation {
	return &Expectation{
		registry: r,
		sink:     sink,
		actual:   actual,
	}
}

// Not inverts the expectation: a comparison that passes now
// fails, using the matcher's message for the inverted
// direction.
//
// Not must only be combined with synchronous matchers. The
// asynchronous-bridged matchers (ToBeAccessible,
// ToEqualResourceText, ToHaveResourceText) always declare a
// pass, so an inverted call fails unconditionally and says
// nothing useful. This is a documented limitation, not
// enforced.
func (e *Expectation) Not() *Expectation {
	return &Expectation{
		registry: e.registry,
		sink:     e.sink,
		actual:   e.actual,
		negated:  !e.negated,
	}
}

// To runs the registered matcher name against the actual value.
// It returns the effective outcome after negation. Unknown
// names and malformed calls are reported to the sink and count
// as failed.
func (e *Expectation) To(name string, args ...any) bool {
	m, ok := e.registry.Matcher(name)
	if !ok {
		e.sink.Fail(fmt.Sprintf(
			"no matcher registered under name %q", name,
		))
		return false
	}

	cmp, err := m.Compare(e.registry.context(e.sink), e.actual, args...)
	if err != nil {
		e.registry.logger.Error("matcher call rejected",
			logging.StringField("matcher", name),
			logging.ErrorField(err),
		)
		e.sink.Fail(err.Error())
		return false
	}

	pass := cmp.Pass != e.negated
	if !pass {
		e.sink.Fail(cmp.Message)
	}
	return pass
}

// report applies negation and failure reporting to a native
// comparison.
func (e *Expectation) report(cmp Comparison) bool {
	pass := cmp.Pass != e.negated
	if !pass {
		e.sink.Fail(cmp.Message)
	}
	return pass
}

// ToEqual passes when the actual value deep-equals expected.
func (e *Expectation) ToEqual(expected any) bool {
	if reflect.DeepEqual(e.actual, expected) {
		return e.report(Comparison{
			Pass: true,
			Message: fmt.Sprintf(
				"Expected %v to not equal %v",
				e.actual, expected,
			),
		})
	}
	return e.report(Comparison{
		Pass: false,
		Message: fmt.Sprintf(
			"Expected %v to equal %v", e.actual, expected,
		),
	})
}

// ToBeTruthy passes when the actual value is truthy.
func (e *Expectation) ToBeTruthy() bool {
	if truthy(e.actual) {
		return e.report(Comparison{
			Pass: true,
			Message: fmt.Sprintf(
				"Expected %v to not be truthy", e.actual,
			),
		})
	}
	return e.report(Comparison{
		Pass: false,
		Message: fmt.Sprintf(
			"Expected %v to be truthy", e.actual,
		),
	})
}

// ToBeFalsy passes when the actual value is not truthy.
func (e *Expectation) ToBeFalsy() bool {
	if !truthy(e.actual) {
		return e.report(Comparison{
			Pass: true,
			Message: fmt.Sprintf(
				"Expected %v to not be falsy", e.actual,
			),
		})
	}
	return e.report(Comparison{
		Pass: false,
		Message: fmt.Sprintf(
			"Expected %v to be falsy", e.actual,
		),
	})
}

// ToBeVisible passes when the element's computed display style
// is not "none".
func (e *Expectation) ToBeVisible() bool {
	return e.To(NameVisible)
}

// ToExist passes when the actual value is truthy.
func (e *Expectation) ToExist() bool {
	return e.To(NameExists)
}

// ToHaveCssClass passes when the element's class list contains
// className. A leading selector dot is a malformed call.
func (e *Expectation) ToHaveCssClass(className string) bool {
	return e.To(NameHasCssClass, className)
}

// ToHaveStyle checks every property in the expectation map
// against the element's computed style.
func (e *Expectation) ToHaveStyle(styles *dom.StyleMap) bool {
	return e.To(NameHasStyle, styles)
}

// ToHaveText passes when the element's text equals text.
// Whitespace is trimmed unless trimWhitespace is given as
// false.
func (e *Expectation) ToHaveText(
	text string, trimWhitespace ...bool,
) bool {
	args := []any{text}
	for _, flag := range trimWhitespace {
		args = append(args, flag)
	}
	return e.To(NameHasText, args...)
}

// ToBeAccessible starts an accessibility scan of the element
// and declares a pass immediately; violations found later are
// reported through the fail sink. Optional arguments: a func()
// completion callback and a *a11y.Config. Do not combine with
// Not.
func (e *Expectation) ToBeAccessible(opts ...any) bool {
	return e.To(NameAccessible, opts...)
}

// ToEqualResourceText resolves the resource string name in the
// background and declares a pass immediately; a mismatch with
// the actual string is reported through the fail sink. Optional
// arguments: []any interpolation arguments and a func()
// completion callback. Do not combine with Not.
func (e *Expectation) ToEqualResourceText(
	name string, opts ...any,
) bool {
	args := append([]any{name}, opts...)
	return e.To(NameResourceTextEquals, args...)
}

// ToHaveResourceText resolves the resource string name in the
// background and declares a pass immediately; a mismatch with
// the element's text is reported through the fail sink.
// Optional arguments: []any interpolation arguments, a bool
// trim flag (default true), and a func() completion callback.
// Do not combine with Not.
func (e *Expectation) ToHaveResourceText(
	name string, opts ...any,
) bool {
	args := append([]any{name}, opts...)
	return e.To(NameElementHasResourceText, args...)
}
