package common

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// TypeName reports the name of the type bound to T, e.g. "string".
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// DisableMethods so Stringer types still show their raw fields.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

// Dump renders x as a deep, field-annotated structure.
func Dump(x any) string {
	return dumper.Sdump(x)
}
