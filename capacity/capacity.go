package capacity

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxUint is the largest value representable by uint.
const MaxUint = ^uint(0)

// Size is implemented by marker types which state how many elements of a
// container live outside of its growable backing store. Non-empty containers
// with a single statically held element use One; containers guaranteeing more
// elements provide their own marker. Markers must be stateless value types.
type Size interface {
	Static() uint
}

// One is the Size marker for containers which guarantee a single element.
type One struct{}

// Static returns 1, the number of statically held elements.
func (One) Static() uint { return 1 }

// Capacity expresses a pre-allocation size for a container that holds N
// elements statically, outside of its growable backing store.
//
// Pre-allocation sizes for such containers are ambiguous: does a capacity of
// 10 mean "room for 10 elements overall" or "room for 10 elements in the
// growable portion, on top of the guaranteed ones"? Capacity removes the
// ambiguity by carrying both views at once:
//
//   - total: the overall pre-allocated element count, including the
//     statically guaranteed portion,
//   - dynamic: the pre-allocated count of the growable portion alone.
//
// The two views always satisfy total == dynamic + N. Construction clamps and
// saturates instead of failing: a capacity is an allocation hint, never a
// limit on the logical size of the container it serves.
//
// A Capacity is an immutable comparable value. The zero value is valid and
// equals Default.
type Capacity[N Size] struct {
	dynamic uint
}

func staticSize[N Size]() uint {
	var n N
	return n.Static()
}

// FromTotal creates a Capacity from a total pre-allocation size. Totals
// smaller than the statically guaranteed portion are raised to it, making
// FromTotal(0) equivalent to Default.
func FromTotal[N Size](total uint) Capacity[N] {
	n := staticSize[N]()
	return Capacity[N]{dynamic: max(total, n) - n}
}

// FromDynamic creates a Capacity from the pre-allocation size of the growable
// portion alone. Sizes within N of MaxUint are reduced to MaxUint - N, so the
// total view cannot overflow.
func FromDynamic[N Size](dynamic uint) Capacity[N] {
	n := staticSize[N]()
	return Capacity[N]{dynamic: min(dynamic, MaxUint-n)}
}

// Default returns the minimum valid capacity: all elements statically
// guaranteed, no dynamic pre-allocation. Equivalent to FromTotal(N).
func Default[N Size]() Capacity[N] {
	return Capacity[N]{}
}

// Total converts an unsigned integer value of any flavor to a Capacity,
// interpreting it as total capacity.
//
// Treating plain integers as totals is the conservative choice, and it is
// deliberate that no dynamic-flavored counterpart exists: callers who mean
// the growable portion alone have to say so explicitly with FromDynamic.
func Total[N Size, U constraints.Unsigned](capacity U) Capacity[N] {
	return FromTotal[N](uint(capacity))
}

// Total returns the overall pre-allocated element count, including the
// statically guaranteed portion.
func (c Capacity[N]) Total() uint {
	return c.dynamic + staticSize[N]()
}

// Dynamic returns the pre-allocated element count of the growable portion
// alone.
func (c Capacity[N]) Dynamic() uint {
	return c.dynamic
}

// Static returns N, the number of statically guaranteed elements.
func (c Capacity[N]) Static() uint {
	return staticSize[N]()
}

func (c Capacity[N]) String() string {
	return fmt.Sprintf("capacity(total: %d, dynamic: %d)", c.Total(), c.Dynamic())
}
