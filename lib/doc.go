// Package lib provides small statistical helpers used to summarize
// allocator behaviour over time. They are meant to be small,
// self-contained and shall not depend on anything other than the
// standard library.
package lib
