package shared

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	domainerrors "users/internal/domain/errors"
)

// GuardResult is the pass/fail outcome of a single precondition check.
type GuardResult struct {
	Succeeded bool
	Message   string
}

var guardPassed = GuardResult{Succeeded: true}

func guardFailed(format string, args ...any) GuardResult {
	return GuardResult{Message: fmt.Sprintf(format, args...)}
}

// Err converts a failed check into code carrying the guard message as details.
// It returns nil when the check passed.
func (g GuardResult) Err(code *domainerrors.BaseError) error {
	if g.Succeeded {
		return nil
	}

	return code.WithDetails(g.Message)
}

// AgainstNullOrUndefined fails when value is nil, a nil pointer, map, slice,
// channel, func or interface, or an empty string.
func AgainstNullOrUndefined(value any, argumentName string) GuardResult {
	if isAbsent(value) {
		return guardFailed("%s is null or undefined", argumentName)
	}

	return guardPassed
}

// AgainstAtLeast fails when argument has fewer than numChars characters.
func AgainstAtLeast(numChars int, argument, argumentPath string) GuardResult {
	if utf8.RuneCountInString(argument) < numChars {
		return guardFailed("%s is not at least %d chars.", argumentPath, numChars)
	}

	return guardPassed
}

// AgainstAtMost fails when argument has more than numChars characters.
func AgainstAtMost(numChars int, argument, argumentPath string) GuardResult {
	if utf8.RuneCountInString(argument) > numChars {
		return guardFailed("%s is greater than %d chars.", argumentPath, numChars)
	}

	return guardPassed
}

// Combine returns the first failed result, or a passing one when all passed.
func Combine(results ...GuardResult) GuardResult {
	for _, result := range results {
		if !result.Succeeded {
			return result
		}
	}

	return guardPassed
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}

	if s, ok := value.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
