// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import "slices"

// Ticket is one generated set of numbers for a variant.
type Ticket struct {
	Variant       string `json:"variant"`
	Numbers       []int  `json:"numbers"`
	SpecialNumber int    `json:"special_number"`
	Multiplier    int    `json:"multiplier"`
}

// Equal compares tickets by value.
func (t Ticket) Equal(o Ticket) bool {
	return t.Variant == o.Variant &&
		t.SpecialNumber == o.SpecialNumber &&
		t.Multiplier == o.Multiplier &&
		slices.Equal(t.Numbers, o.Numbers)
}

// Clone returns a copy that shares no memory with t.
func (t Ticket) Clone() Ticket {
	t.Numbers = slices.Clone(t.Numbers)
	return t
}
