/*
Package nonempty offers variants of common collections which are guaranteed
to hold at least one item.

Non-empty collections

A collection that is impossible to be empty frees callers from checking for
the empty case at runtime: expectations move into the types. An accessor like
First or Last never needs to signal absence, and APIs accepting a non-empty
sequence document their precondition without a single runtime check.

All collections in this package share one storage shape: a single statically
held item plus an ordinary growable Go collection for everything beyond it.
For a sequence this is a field of type T next to a slice, for a map a first
key/value pair next to a Go map, and so on. There is no special-casing
involved, just a product type and a little index arithmetic.

The subtle point of the design is shrinking. Pushing can never violate
non-emptiness, but removing the last item would. Operations which may shrink a
collection to zero items therefore consume it: they return a successor pointer
which is nil exactly when the removed item was the final one. Callers are
forced to handle the "collection is gone" case explicitly instead of being
left with a stale object whose invariant no longer holds.

Pre-allocation sizes are expressed with the capacity sub-package, which keeps
the "total size" and "growable portion only" views of a capacity from being
confused.

Collection names clash with general Go vocabulary on purpose; client code is
expected to refer to them package-qualified, as in nonempty.Seq or
nonempty.Set, which keeps them distinguishable from their possibly-empty
counterparts.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package nonempty

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for use inside generic functions where a type parameter
// named T shadows the function.
var tracer = T

// Error is an error type for the nonempty module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrSourceEmpty signals that a conversion from a plain collection could not
// satisfy the non-emptiness guarantee because the source held no items.
const ErrSourceEmpty = Error("source collection is empty")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
