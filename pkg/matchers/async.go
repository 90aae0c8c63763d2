package matchers

import (
	"context"
	"fmt"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/a11y"
)

// bridge runs check in a background goroutine and immediately
// returns a passing Comparison with an empty message, so the
// expectation's native report never fires. When check settles
// with an error — a detected mismatch, or a failure of the
// underlying service — the error's message goes to the fail
// sink verbatim. The completion callback is invoked exactly
// once after settlement on every path; callers that await it
// keep the failure attributed to the test that started the
// check.
//
// The synchronous return happens-before the background check
// settles. Across several bridged comparisons in one test,
// settlement order is unspecified.
func bridge(
	ctx Context,
	done func(),
	check func() error,
) Comparison {
	go func() {
		if err := check(); err != nil {
			ctx.Sink.Fail(err.Error())
		}
		if done != nil {
			done()
		}
	}()
	return Comparison{Pass: true, Message: ""}
}

// compareAccessible starts an accessibility scan of the element
// and declares a pass immediately. Optional arguments, in any
// order: a func() completion callback and a *a11y.Config scan
// configuration. When the scan finds violations, their report
// is forwarded to the fail sink.
//
// Negating this matcher is unsupported: its declared result is
// constant.
func compareAccessible(
	ctx Context, actual any, args ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameAccessible)
	if err != nil {
		return Comparison{}, err
	}

	if ctx.Scanner == nil {
		return Comparison{}, &ArgumentError{
			Matcher: NameAccessible,
			Reason:  "no accessibility scanner configured",
		}
	}

	var done func()
	var cfg *a11y.Config
	for _, arg := range args {
		switch v := arg.(type) {
		case func():
			done = v
		case *a11y.Config:
			cfg = v
		case nil:
		default:
			return Comparison{}, &ArgumentError{
				Matcher: NameAccessible,
				Reason: fmt.Sprintf(
					"unsupported argument of type %T", arg,
				),
			}
		}
	}

	scanner := ctx.Scanner
	return bridge(ctx, done, func() error {
		return scanner.Scan(context.Background(), el, cfg)
	}), nil
}

// compareResourceTextEquals resolves a resource string in the
// background and declares a pass immediately. Arguments: the
// resource name (string, required), optional []any
// interpolation arguments, optional func() completion callback.
// When the resolved string differs from the actual string, the
// mismatch goes to the fail sink.
//
// Negating this matcher is unsupported: its declared result is
// constant.
func compareResourceTextEquals(
	ctx Context, actual any, args ...any,
) (Comparison, error) {
	actualText, ok := actual.(string)
	if !ok {
		return Comparison{}, &ArgumentError{
			Matcher: NameResourceTextEquals,
			Reason: fmt.Sprintf(
				"actual value must be a string, got %T", actual,
			),
		}
	}

	name, lookupArgs, done, err := resourceArgs(
		args, NameResourceTextEquals,
	)
	if err != nil {
		return Comparison{}, err
	}
	if ctx.Resources == nil {
		return Comparison{}, &ArgumentError{
			Matcher: NameResourceTextEquals,
			Reason:  "no resource service configured",
		}
	}

	svc := ctx.Resources
	return bridge(ctx, done, func() error {
		resolved, err := svc.GetString(
			context.Background(), name, lookupArgs...,
		)
		if err != nil {
			return err
		}
		if actualText != resolved {
			return fmt.Errorf(
				"Expected %q to equal %q", actualText, resolved,
			)
		}
		return nil
	}), nil
}

// compareElementHasResourceText reads the element's text
// synchronously, resolves a resource string in the background,
// and declares a pass immediately. Arguments: the resource name
// (string, required), optional []any interpolation arguments,
// optional bool trim flag (default true), optional func()
// completion callback.
//
// Negating this matcher is unsupported: its declared result is
// constant.
func compareElementHasResourceText(
	ctx Context, actual any, args ...any,
) (Comparison, error) {
	el, err := toElement(actual, NameElementHasResourceText)
	if err != nil {
		return Comparison{}, err
	}

	name, lookupArgs, done, trim, err := resourceTextArgs(
		args, NameElementHasResourceText,
	)
	if err != nil {
		return Comparison{}, err
	}
	if ctx.Resources == nil {
		return Comparison{}, &ArgumentError{
			Matcher: NameElementHasResourceText,
			Reason:  "no resource service configured",
		}
	}

	text := el.Text()
	if trim {
		text = el.TrimmedText()
	}

	svc := ctx.Resources
	return bridge(ctx, done, func() error {
		resolved, err := svc.GetString(
			context.Background(), name, lookupArgs...,
		)
		if err != nil {
			return err
		}
		if text != resolved {
			return fmt.Errorf(
				"Expected element's text to be %q", resolved,
			)
		}
		return nil
	}), nil
}

// resourceArgs parses the argument list shared by the resource
// text matchers: name, optional interpolation arguments,
// optional completion callback.
func resourceArgs(
	args []any, matcher string,
) (name string, lookupArgs []any, done func(), err error) {
	name, err = stringArg(args, 0, matcher, "resource name")
	if err != nil {
		return "", nil, nil, err
	}

	for _, arg := range args[1:] {
		switch v := arg.(type) {
		case []any:
			lookupArgs = v
		case func():
			done = v
		case nil:
		default:
			return "", nil, nil, &ArgumentError{
				Matcher: matcher,
				Reason: fmt.Sprintf(
					"unsupported argument of type %T", arg,
				),
			}
		}
	}
	return name, lookupArgs, done, nil
}

// resourceTextArgs additionally accepts the bool trim flag.
func resourceTextArgs(
	args []any, matcher string,
) (name string, lookupArgs []any, done func(), trim bool, err error) {
	trim = true
	name, err = stringArg(args, 0, matcher, "resource name")
	if err != nil {
		return "", nil, nil, false, err
	}

	for _, arg := range args[1:] {
		switch v := arg.(type) {
		case []any:
			lookupArgs = v
		case func():
			done = v
		case bool:
			trim = v
		case nil:
		default:
			return "", nil, nil, false, &ArgumentError{
				Matcher: matcher,
				Reason: fmt.Sprintf(
					"unsupported argument of type %T", arg,
				),
			}
		}
	}
	return name, lookupArgs, done, trim, nil
}
