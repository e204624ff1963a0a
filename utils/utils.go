// Package utils implements generic helper functions shared across ilsolve.
package utils

import (
	"golang.org/x/exp/constraints"
)

// MaxSlice returns the largest element of s.
// It panics on an empty slice.
func MaxSlice[T constraints.Ordered](s []T) (m T) {
	if len(s) == 0 {
		panic("cannot MaxSlice: empty slice")
	}
	m = s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return
}

// MinSlice returns the smallest element of s.
// It panics on an empty slice.
func MinSlice[T constraints.Ordered](s []T) (m T) {
	if len(s) == 0 {
		panic("cannot MinSlice: empty slice")
	}
	m = s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return
}
