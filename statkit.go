// Copyright 2023 F. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.
// Statkit provides basic descriptive statistics over slices of float64 values.
package statkit

import (
	"math"
	"slices"
)

// StatFn is the signature shared by every statistic in this package.
// It takes a read-only slice of float64 values and returns the computed
// statistic together with an ok flag. The flag is false exactly when the
// statistic is mathematically undefined for the input; an undefined
// statistic is a normal result, not an error, so no statistic ever
// returns an error or panics.
// Callers can use StatFn to build dispatch tables mapping statistic
// names to implementations, see Registry.
//
// Inputs are assumed to hold ordinary finite floats. Behavior with NaN
// or infinite values is unspecified.
type StatFn func(nums []float64) (float64, bool)

// Mean returns the arithmetic mean of nums, the sum of the elements
// divided by their count. The mean of an empty slice is defined as 0.0
// by convention, so Mean always reports ok.
func Mean(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0.0, true
	}

	var sum float64
	for _, num := range nums {
		sum += num
	}

	return sum / float64(len(nums)), true
}

// StdDev returns the population standard deviation of nums, the square
// root of the average squared deviation from the mean (divisor n, not
// n-1). The standard deviation of an empty slice is undefined and
// reported with ok=false. A slice of identical values yields exactly 0.
func StdDev(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}

	mean, _ := Mean(nums)

	var sum float64
	for _, num := range nums {
		sum += (num - mean) * (num - mean)
	}

	return math.Sqrt(sum / float64(len(nums))), true
}

// Median returns the element at zero-based index ⌊n/2⌋-1 of an
// ascending-sorted copy of nums. For even-length input this picks the
// lower of the two middle elements rather than averaging them, and for
// odd-length input the element just before the true middle; callers
// relying on the textbook average-of-middles definition should not use
// this function. The median of an empty slice is undefined and reported
// with ok=false.
// The input slice is never mutated; sorting happens on a private copy.
func Median(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	// The selection index is negative for a single element; clamp so a
	// one-element slice yields that element.
	idx := len(sorted)/2 - 1
	if idx < 0 {
		idx = 0
	}

	return sorted[idx], true
}

// L2 returns the Euclidean (L2) norm of nums, the square root of the
// sum of squares of the elements. The norm of an empty slice is 0.0,
// consistent with the empty-sum convention, so L2 always reports ok.
func L2(nums []float64) (float64, bool) {
	var sum float64
	for _, num := range nums {
		sum += num * num
	}

	return math.Sqrt(sum), true
}
