// Package collect provides one-pass grouping helpers over slices.
// Every helper builds a map from key to running count or sum, with missing keys
// starting at zero.
package collect

import "cmp"

type (
	// keyFunc extracts the grouping key of an item
	keyFunc[T any, K comparable] func(item T) K
	// expandFunc maps one item to the keys it contributes to
	expandFunc[T any, K comparable] func(item T) []K
	// valueFunc extracts the value summed for an item
	valueFunc[T any] func(item T) float64
)

// CountBy counts the items of each key
func CountBy[T any, K comparable](items []T, key keyFunc[T, K]) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// CountEach counts every key produced by expand over all items.
// The seed keys are present in the result even when nothing was counted for them.
func CountEach[T any, K comparable](items []T, expand expandFunc[T, K], seed ...K) map[K]int {
	counts := make(map[K]int, len(seed))
	for _, k := range seed {
		counts[k] = 0
	}
	for _, item := range items {
		for _, k := range expand(item) {
			counts[k]++
		}
	}
	return counts
}

// SumBy sums the values of the items of each key
func SumBy[T any, K comparable](items []T, key keyFunc[T, K], value valueFunc[T]) map[K]float64 {
	sums := make(map[K]float64)
	for _, item := range items {
		sums[key(item)] += value(item)
	}
	return sums
}

// KeysWhere returns the keys whose value satisfies keep
func KeysWhere[K comparable, V any](m map[K]V, keep func(V) bool) []K {
	var keys []K
	for k, v := range m {
		if keep(v) {
			keys = append(keys, k)
		}
	}
	return keys
}

// MaxBy returns the key holding the largest count.
// Ties go to the smallest key so the result does not depend on map order.
// ok is false for an empty map.
func MaxBy[K cmp.Ordered](counts map[K]int) (best K, ok bool) {
	bestCount := 0
	for k, c := range counts {
		switch {
		case !ok, c > bestCount, c == bestCount && k < best:
			best, bestCount, ok = k, c, true
		}
	}
	return best, ok
}
