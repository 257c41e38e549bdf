// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import "fmt"

// Generator assembles tickets from an injected Sampler.
type Generator struct {
	sampler Sampler
}

func NewGenerator(s Sampler) *Generator {
	return &Generator{sampler: s}
}

// Generate draws a ticket for v: the main numbers first, then the special
// number, then the multiplier index.
func (g *Generator) Generate(v Variant) (Ticket, error) {
	numbers, err := UniqueSet(g.sampler, v.Pick, v.Pool.Min, v.Pool.Max)
	if err != nil {
		return Ticket{}, fmt.Errorf("generate %s: %w", v.Key, err)
	}
	if len(v.Multipliers) == 0 {
		return Ticket{}, fmt.Errorf("generate %s: %w: no multipliers", v.Key, ErrInvalidParameters)
	}

	special := g.sampler.Between(v.Special.Min, v.Special.Max)
	multiplier := ChooseOption(g.sampler, v.Multipliers)

	return Ticket{
		Variant:       v.Key,
		Numbers:       numbers,
		SpecialNumber: special,
		Multiplier:    multiplier,
	}, nil
}

// GeneratePowerball returns 5 numbers in [1,69], a Powerball in [1,26] and a
// Power Play multiplier from {2,3,4,5,10}.
func (g *Generator) GeneratePowerball() Ticket {
	return g.mustGenerate(Powerball())
}

// GenerateMegaMillions returns 5 numbers in [1,70], a Mega Ball in [1,25] and
// a Megaplier from {2,3,4,5}.
func (g *Generator) GenerateMegaMillions() Ticket {
	return g.mustGenerate(MegaMillions())
}

// built-in variants always satisfy the pool precondition
func (g *Generator) mustGenerate(v Variant) Ticket {
	t, err := g.Generate(v)
	if err != nil {
		panic(err)
	}
	return t
}
