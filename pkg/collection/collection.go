// Package collection provides generic helpers over slices and maps.
//
// Functions never modify their inputs; results are freshly allocated and never nil
// for slice returns.
package collection

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	apperrors "utilkit/pkg/errors"
)

// Unique keeps the first occurrence of each value.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(v T) T { return v })
}

// UniqueBy keeps the first item for each key.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Chunk splits items into consecutive groups of size; the last group may be
// shorter.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, apperrors.RangeError("size", fmt.Sprintf("must be positive, got %d", size))
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		out = append(out, slices.Clone(chunk))
	}
	return out, nil
}

// Compact drops zero values.
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Flatten concatenates nested slices one level deep.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}
	out := make([]T, 0, n)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

// Intersection returns the unique values of a that also occur in b, in a's order.
func Intersection[T comparable](a, b []T) []T {
	set := toSet(b)
	return Unique(slices.DeleteFunc(slices.Clone(a), func(v T) bool {
		_, ok := set[v]
		return !ok
	}))
}

// Difference returns the values of a that do not occur in b, in a's order.
func Difference[T comparable](a, b []T) []T {
	set := toSet(b)
	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := set[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}

// Pick copies the listed keys that exist in m.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit copies m without the listed keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V)
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
