// Package result provides Result, a value that is either a success of
// type T or an error of type E.
//
// A Result is built by Ok or Fail and never changes state afterwards;
// only the branch selected at construction can be read. The zero value
// is a failure holding E's zero value.
package result

import (
	"fmt"
	"strings"

	"github.com/rickbarretto/dsa/common"
)

// Result holds either a T value or an E error, selected at
// construction time.
type Result[T, E any] struct {
	ok   T // valid only when isOK
	err  E // valid only when !isOK
	isOK bool
}

// Ok returns a success Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: value, isOK: true}
}

// Fail returns a failure Result holding err.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.isOK
}

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.isOK
}

// Value returns the success value. The second return is false when r
// is a failure, in which case the first return is T's zero value.
func (r Result[T, E]) Value() (T, bool) {
	if !r.isOK {
		var zero T
		return zero, false
	}
	return r.ok, true
}

// Error returns the error value. The second return is false when r is
// a success.
func (r Result[T, E]) Error() (E, bool) {
	if r.isOK {
		var zero E
		return zero, false
	}
	return r.err, true
}

// ValueOr returns the success value, or fallback when r is a failure.
func (r Result[T, E]) ValueOr(fallback T) T {
	if !r.isOK {
		return fallback
	}
	return r.ok
}

// ErrorOr returns the error value, or fallback when r is a success.
func (r Result[T, E]) ErrorOr(fallback E) E {
	if r.isOK {
		return fallback
	}
	return r.err
}

// ValueOrElse returns the success value, or the result of orElse when
// r is a failure. orElse runs only in the failure case.
func (r Result[T, E]) ValueOrElse(orElse func() T) T {
	if !r.isOK {
		return orElse()
	}
	return r.ok
}

// ErrorOrElse returns the error value, or the result of orElse when r
// is a success. orElse runs only in the success case.
func (r Result[T, E]) ErrorOrElse(orElse func() E) E {
	if r.isOK {
		return orElse()
	}
	return r.err
}

// Match calls onOk with the success value or onErr with the error
// value, whichever branch is populated. A nil handler for the
// populated branch is a no-op.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isOK {
		if onOk != nil {
			onOk(r.ok)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}

// MustValue returns the success value.
// It panics if r is a failure.
func (r Result[T, E]) MustValue() T {
	if !r.isOK {
		panic(fmt.Sprintf("result: MustValue on failure: %v", r.err))
	}
	return r.ok
}

// String renders r as "Ok { <value> }" or "Error { <value> }". Values
// render with %v, so element types control their own formatting by
// implementing fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.isOK {
		return fmt.Sprintf("Ok { %v }", r.ok)
	}
	return fmt.Sprintf("Error { %v }", r.err)
}

// Debug renders r as a multi-line block naming the variant and the
// two bound types, the discriminant, and the live value.
func (r Result[T, E]) Debug() string {
	variant, value := "Error", fmt.Sprint(r.err)
	if r.isOK {
		variant, value = "Ok", fmt.Sprint(r.ok)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Result::%s<%s, %s> {\n", variant, common.TypeName[T](), common.TypeName[E]())
	fmt.Fprintf(&b, "  is_ok: %t,\n", r.isOK)
	fmt.Fprintf(&b, "  value: %s\n", value)
	b.WriteString("}")
	return b.String()
}

// Dump renders r as a deep spew structure, including the inactive
// branch.
func (r Result[T, E]) Dump() string {
	return common.Dump(r)
}
