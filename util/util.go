package util

import (
	"golang.org/x/exp/constraints"
)

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// Mod always returns a value in [0, m) even for negative a.
func Mod[A constraints.Integer](a A, m A) A {
	return ((a % m) + m) % m
}

func Contains[A comparable](items []A, item A) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}

// Replace returns a copy of items with every occurrence of from swapped for to.
func Replace[A comparable](items []A, from A, to A) []A {
	res := make([]A, len(items))
	for i, v := range items {
		if v == from {
			res[i] = to
		} else {
			res[i] = v
		}
	}
	return res
}

func Count[A any](items []A, pred func(A) bool) int {
	var n int
	for _, v := range items {
		if pred(v) {
			n++
		}
	}
	return n
}
