// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrUnknownVariant    = errors.New("unknown variant")
)

// UniqueSet draws count distinct values from [min, max] and returns them in
// ascending order. Duplicates are discarded and redrawn.
func UniqueSet(s Sampler, count, min, max int) ([]int, error) {
	if err := checkPool(count, min, max); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, count)
	for len(seen) < count {
		seen[s.Between(min, max)] = struct{}{}
	}

	numbers := make([]int, 0, count)
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}

// ChooseOption picks one element of options uniformly by sampling its index.
// Panics on an empty list.
func ChooseOption(s Sampler, options []int) int {
	if len(options) == 0 {
		panic("lottery: ChooseOption on empty option list")
	}
	return options[s.Between(0, len(options)-1)]
}

func checkPool(count, min, max int) error {
	if count < 1 {
		return fmt.Errorf("%w: count %d must be positive", ErrInvalidParameters, count)
	}
	if err := checkRange(min, max); err != nil {
		return err
	}
	if size, _ := rangeSize(min, max); count > size {
		return fmt.Errorf("%w: cannot draw %d distinct values from a pool of %d", ErrInvalidParameters, count, size)
	}
	return nil
}

func checkRange(min, max int) error {
	if min > max {
		return fmt.Errorf("%w: range [%d, %d] is empty", ErrInvalidParameters, min, max)
	}
	if _, ok := rangeSize(min, max); !ok {
		return fmt.Errorf("%w: range [%d, %d] is too large", ErrInvalidParameters, min, max)
	}
	return nil
}

// rangeSize returns max-min+1, or false when it is not a positive int.
func rangeSize(min, max int) (int, bool) {
	if min > max {
		return 0, false
	}
	// two's complement difference is exact for min <= max
	d := uint64(max) - uint64(min)
	if d >= math.MaxInt {
		return 0, false
	}
	return int(d) + 1, true
}
