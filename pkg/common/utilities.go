/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

import "sort"

type Ordered interface {
	~int | ~int64 | ~float64 | ~string
}

// DistinctValues holds the deduplicated projections of a record set, sorted
// ascending so that enumeration is deterministic.
type DistinctValues struct {
	Machines      []string
	Applications  []string
	TaskCounts    []int
	DataSizes     []int
	WorkloadTypes []string
}

func Unique[T Ordered](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})

	return result
}

type Pair[T any] struct {
	First  T
	Second T
}

// Combinations returns every unordered pair of distinct positions in values,
// in lexicographic order of positions.
func Combinations[T any](values []T) []Pair[T] {
	var result []Pair[T]

	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			result = append(result, Pair[T]{First: values[i], Second: values[j]})
		}
	}

	return result
}

/**
 * NextCProduct generates the next Cartesian product of the given limits
 **/
func NextCProduct(limits []int) func() []int {
	permutations := make([]int, len(limits))
	indices := make([]int, len(limits))
	done := false

	for _, limit := range limits {
		if limit < 0 {
			done = true
		}
	}

	return func() []int {
		if done {
			return nil
		}

		copy(permutations, indices)

		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] <= limits[i] {
				break
			}
			indices[i] = 0
			if i == 0 {
				// All permutations have been generated
				done = true
			}
		}
		if len(indices) == 0 {
			done = true
		}

		return permutations
	}
}
