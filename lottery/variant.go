// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Size is the number of values in r, or 0 when r is empty or too large.
func (r Range) Size() int {
	n, _ := rangeSize(r.Min, r.Max)
	return n
}

// Variant describes one lottery game.
type Variant struct {
	Key             string `json:"key" yaml:"key"`
	Name            string `json:"name" yaml:"name"`
	Pick            int    `json:"pick" yaml:"pick"`
	Pool            Range  `json:"pool" yaml:"pool"`
	Special         Range  `json:"special" yaml:"special"`
	SpecialLabel    string `json:"special_label" yaml:"special_label"`
	Multipliers     []int  `json:"multipliers" yaml:"multipliers"`
	MultiplierLabel string `json:"multiplier_label" yaml:"multiplier_label"`
}

// Powerball is 5 of [1,69], a Powerball in [1,26] and a Power Play
// multiplier from {2,3,4,5,10}.
func Powerball() Variant {
	return Variant{
		Key:             "powerball",
		Name:            "Powerball",
		Pick:            5,
		Pool:            Range{Min: 1, Max: 69},
		Special:         Range{Min: 1, Max: 26},
		SpecialLabel:    "Powerball",
		Multipliers:     []int{2, 3, 4, 5, 10},
		MultiplierLabel: "Power Play",
	}
}

// MegaMillions is 5 of [1,70], a Mega Ball in [1,25] and a Megaplier from
// {2,3,4,5}.
func MegaMillions() Variant {
	return Variant{
		Key:             "mega-millions",
		Name:            "Mega Millions",
		Pick:            5,
		Pool:            Range{Min: 1, Max: 70},
		Special:         Range{Min: 1, Max: 25},
		SpecialLabel:    "Mega Ball",
		Multipliers:     []int{2, 3, 4, 5},
		MultiplierLabel: "Megaplier",
	}
}

// Clone returns a copy that shares no memory with v.
func (v Variant) Clone() Variant {
	v.Multipliers = slices.Clone(v.Multipliers)
	return v
}

// Check validates the variant's parameters so that generation can never
// stall or index out of range.
func (v Variant) Check() error {
	if v.Key == "" {
		return fmt.Errorf("%w: variant key is required", ErrInvalidParameters)
	}
	if err := checkPool(v.Pick, v.Pool.Min, v.Pool.Max); err != nil {
		return fmt.Errorf("variant %q numbers: %w", v.Key, err)
	}
	if err := checkRange(v.Special.Min, v.Special.Max); err != nil {
		return fmt.Errorf("variant %q special: %w", v.Key, err)
	}
	if len(v.Multipliers) == 0 {
		return fmt.Errorf("%w: variant %q has no multipliers", ErrInvalidParameters, v.Key)
	}
	if len(lo.Uniq(v.Multipliers)) != len(v.Multipliers) {
		return fmt.Errorf("%w: variant %q has duplicate multipliers", ErrInvalidParameters, v.Key)
	}
	if lo.SomeBy(v.Multipliers, func(m int) bool { return m < 1 }) {
		return fmt.Errorf("%w: variant %q multipliers must be positive", ErrInvalidParameters, v.Key)
	}
	return nil
}

// Validate reports whether t satisfies the variant's ticket invariants.
func (v Variant) Validate(t Ticket) error {
	if len(t.Numbers) != v.Pick {
		return fmt.Errorf("expected %d numbers, got %d", v.Pick, len(t.Numbers))
	}
	for i, n := range t.Numbers {
		if !v.Pool.Contains(n) {
			return fmt.Errorf("number %d outside [%d, %d]", n, v.Pool.Min, v.Pool.Max)
		}
		if i > 0 && n <= t.Numbers[i-1] {
			return fmt.Errorf("numbers not strictly ascending: %v", t.Numbers)
		}
	}
	if !v.Special.Contains(t.SpecialNumber) {
		return fmt.Errorf("%s %d outside [%d, %d]", v.SpecialLabel, t.SpecialNumber, v.Special.Min, v.Special.Max)
	}
	if !lo.Contains(v.Multipliers, t.Multiplier) {
		return fmt.Errorf("%s %d not in %v", v.MultiplierLabel, t.Multiplier, v.Multipliers)
	}
	return nil
}
