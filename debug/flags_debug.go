//go:build debug

package debug

import "fmt"

func init() {
	fmt.Println("WARNING -- DEBUG FLAG IS ON")
}

// Debug is true when the module is built with the debug tag.
const Debug = true

// Assert panics if condition is false.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		} else {
			panic("assertion failed")
		}
	}
}
