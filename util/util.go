package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// MaxBy returns the largest key(v) over vals. vals must not be empty.
func MaxBy[V any, A constraints.Integer](vals []V, key func(V) A) A {
	res := key(vals[0])
	for _, v := range vals[1:] {
		res = Max(res, key(v))
	}
	return res
}

// MinBy returns the smallest key(v) over vals. vals must not be empty.
func MinBy[V any, A constraints.Integer](vals []V, key func(V) A) A {
	res := key(vals[0])
	for _, v := range vals[1:] {
		res = Min(res, key(v))
	}
	return res
}
