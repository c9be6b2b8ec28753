package spliterkit

import (
	"strings"
)

// Characteristics is a set of guarantees about the remaining elements of a Spliterator.
type Characteristics uint16

const (
	// Ordered means the elements have a defined encounter order,
	// and TrySplit splits off a strict prefix.
	Ordered Characteristics = 1 << iota
	// Distinct means no two remaining elements are equal.
	Distinct
	// Sorted means the encounter order follows the natural order of the elements.
	Sorted
	// Sized means ExactSize reports the number of remaining elements before traversal.
	Sized
	// NonNull means no element is a nil value.
	NonNull
	// Immutable means the element source can't be structurally modified during traversal.
	Immutable
	// Concurrent means the element source can be safely modified concurrently.
	Concurrent
	// SubSized means every piece returned by TrySplit is also Sized.
	SubSized
)

// NoCharacteristics is the empty set.
const NoCharacteristics Characteristics = 0

var characteristicNames = []struct {
	C    Characteristics
	Name string
}{
	{C: Ordered, Name: "ORDERED"},
	{C: Distinct, Name: "DISTINCT"},
	{C: Sorted, Name: "SORTED"},
	{C: Sized, Name: "SIZED"},
	{C: NonNull, Name: "NONNULL"},
	{C: Immutable, Name: "IMMUTABLE"},
	{C: Concurrent, Name: "CONCURRENT"},
	{C: SubSized, Name: "SUBSIZED"},
}

// Has reports whether every flag of oth is present.
func (c Characteristics) Has(oth Characteristics) bool {
	return c&oth == oth
}

func (c Characteristics) String() string {
	if c == NoCharacteristics {
		return "NONE"
	}
	var names []string
	for _, cn := range characteristicNames {
		if c.Has(cn.C) {
			names = append(names, cn.Name)
		}
	}
	return strings.Join(names, "|")
}
