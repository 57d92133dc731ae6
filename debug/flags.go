//go:build !debug

package debug

// Debug is true when the module is built with the debug tag.
const Debug = false

// Assert does nothing unless the debug build tag is set.
func Assert(condition bool, message ...string) {}
