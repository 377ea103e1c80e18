package main

import (
	"fmt"

	"github.com/rickbarretto/dsa/array"
	"github.com/rickbarretto/dsa/common"
)

func main() {
	names := array.New[string](5)

	for i, name := range []string{"Alice", "Bob", "Charlie", "Diana", "Eve"} {
		common.Assert(names.Set(i, name), "index within bounds")
	}

	fmt.Println(names)
	fmt.Println(names.Debug())
	fmt.Print(names.Dump())
}
