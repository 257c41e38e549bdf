// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/lottery"
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

// Line formats a ticket with the variant's labels, e.g.
//
//	Powerball  05 12 23 45 67  Powerball 15  Power Play 5x
func Line(v lottery.Variant, t lottery.Ticket) string {
	return line(v, t, false)
}

func line(v lottery.Variant, t lottery.Ticket, color bool) string {
	nums := make([]string, len(t.Numbers))
	for i, n := range t.Numbers {
		nums[i] = fmt.Sprintf("%02d", n)
	}
	numbers := strings.Join(nums, " ")
	special := fmt.Sprintf("%02d", t.SpecialNumber)
	if color {
		numbers = bold + numbers + reset
		special = bold + special + reset
	}

	name, specialLabel, multiplierLabel := labels(v, t)
	return fmt.Sprintf("%s  %s  %s %s  %s %dx",
		name, numbers, specialLabel, special, multiplierLabel, t.Multiplier)
}

// variants loaded from files may leave labels blank
func labels(v lottery.Variant, t lottery.Ticket) (name, special, multiplier string) {
	name, special, multiplier = v.Name, v.SpecialLabel, v.MultiplierLabel
	if name == "" {
		name = t.Variant
	}
	if special == "" {
		special = "Special"
	}
	if multiplier == "" {
		multiplier = "Multiplier"
	}
	return name, special, multiplier
}

// Writer prints tickets, bolding the numbers when writing to a terminal.
type Writer struct {
	w       io.Writer
	catalog lottery.Catalog
	color   bool
	now     func() time.Time
}

func NewWriter(w io.Writer, catalog lottery.Catalog) *Writer {
	return &Writer{
		w:       w,
		catalog: catalog,
		color:   isTerminal(w),
		now:     time.Now,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteTicket writes one ticket line.
func (w *Writer) WriteTicket(t lottery.Ticket) error {
	v, _ := w.catalog.Lookup(t.Variant)
	_, err := fmt.Fprintln(w.w, line(v, t, w.color))
	return err
}

// WriteEntries writes board entries newest first with their age.
func (w *Writer) WriteEntries(entries []board.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w.w, "No tickets yet.")
		return err
	}
	now := w.now()
	for _, e := range entries {
		v, _ := w.catalog.Lookup(e.Ticket.Variant)
		age := humanize.RelTime(e.GeneratedAt, now, "ago", "from now")
		if _, err := fmt.Fprintf(w.w, "%s  (%s)\n", line(v, e.Ticket, w.color), age); err != nil {
			return err
		}
	}
	return nil
}
