package compare

import (
	"slices"
)

// NilCheck performs a nil check on two pointers and returns whether they are equal
// and whether more comparison checks are needed.
//
// Returns (equal, needsMoreChecks) where:
//   - equal: true if both are nil, false if only one is nil
//   - needsMoreChecks: true if both pointers are non-nil and further comparison is needed
//
// Example:
//
//	func defaultsEqual(a, b *string) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(a, b); !needsMoreChecks {
//	        return eq
//	    }
//	    // Continue with value comparisons...
//	}
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	compare.Pointers(source.Where, target.Where)
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
//
// Example:
//
//	compare.Slices(source.Values, target.Values, func(a, b string) bool { return a == b })
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Sets compares two slices as sets, ignoring order and duplicates. A nil slice is
// treated as empty.
//
// Example:
//
//	compare.Sets([]string{"a", "b"}, []string{"b", "a"})  // true
//	compare.Sets(nil, []string{})                         // true
func Sets[T comparable](a, b []T) bool {
	left := make(map[T]struct{}, len(a))
	for _, v := range a {
		left[v] = struct{}{}
	}

	right := make(map[T]struct{}, len(b))
	for _, v := range b {
		if _, ok := left[v]; !ok {
			return false
		}
		right[v] = struct{}{}
	}

	return len(left) == len(right)
}

// KeyUnion returns the sorted union of the keys of a and b. Iterating the union
// rather than either map gives a deterministic order and visits entries that only
// exist on one side.
//
// Example:
//
//	for _, name := range compare.KeyUnion(source.Tables, target.Tables) {
//	    // source.Tables[name] and/or target.Tables[name] may be nil
//	}
func KeyUnion[V any](a, b map[string]V) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)
	return keys
}
