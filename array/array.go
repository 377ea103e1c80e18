// Package array provides Array, a fixed-size sequence of T with
// bounds-checked access. The element count is fixed at creation; there
// is no resizing.
package array

import (
	"fmt"
	"strings"

	"github.com/rickbarretto/dsa/common"
)

// Array is a fixed-size sequence of T. It wraps an owned slice, so it
// is used by value like a map: copies share the same backing storage,
// and Set mutates in place through a value receiver. The zero value is
// an empty array.
type Array[T any] struct {
	data []T
}

// New returns an Array of size elements, each holding T's zero value.
// A negative size is treated as zero.
func New[T any](size int) Array[T] {
	if size < 0 {
		size = 0
	}
	return Array[T]{data: make([]T, size)}
}

// Get returns the element at index. The second return is false when
// index is out of range.
func (a Array[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, false
	}
	return a.data[index], true
}

// Set overwrites the element at index with value. It reports whether
// index was in range.
func (a Array[T]) Set(index int, value T) bool {
	if index < 0 || index >= len(a.data) {
		return false
	}
	a.data[index] = value
	return true
}

// Replace overwrites the element at index with value and returns the
// previous element. The second return is false when index is out of
// range, in which case nothing is written.
func (a Array[T]) Replace(index int, value T) (T, bool) {
	old, ok := a.Get(index)
	if !ok {
		return old, false
	}
	a.data[index] = value
	return old, true
}

// Size returns the element count.
func (a Array[T]) Size() int {
	return len(a.data)
}

// IsEmpty reports whether the array has no elements.
func (a Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Fill overwrites every element with value.
func (a Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// String renders the array as "[e0, e1, ..., en]". Elements render
// with %v.
func (a Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}

// Debug renders the array as a multi-line block naming the element
// type, the size, and the data line.
func (a Array[T]) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Array<%s> {\n", common.TypeName[T]())
	fmt.Fprintf(&b, "  size: %d,\n", len(a.data))
	fmt.Fprintf(&b, "  data: %s\n", a.String())
	b.WriteString("}")
	return b.String()
}

// Dump renders the array as a deep spew structure.
func (a Array[T]) Dump() string {
	return common.Dump(a)
}
