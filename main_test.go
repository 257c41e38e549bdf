// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/lucky-ticket/lottery"
)

func TestDraw(t *testing.T) {
	tests := []struct {
		name      string
		sampler   lottery.Sampler
		variant   string
		count     int
		wantErr   error
		wantLines []string
	}{
		{
			name:      "exact powerball ticket",
			sampler:   lottery.NewSequenceSampler(5, 12, 23, 45, 67, 15, 3),
			variant:   "powerball",
			count:     1,
			wantLines: []string{"Powerball  05 12 23 45 67  Powerball 15  Power Play 5x"},
		},
		{
			name:    "several mega millions tickets",
			sampler: lottery.NewSeededSampler(9),
			variant: "Mega-Millions",
			count:   3,
		},
		{
			name:    "unknown variant",
			sampler: lottery.NewSequenceSampler(),
			variant: "keno",
			count:   1,
			wantErr: lottery.ErrUnknownVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := draw(&buf, lottery.DefaultCatalog(), lottery.NewGenerator(tt.sampler), tt.variant, tt.count)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				if buf.Len() != 0 {
					t.Errorf("Expected no output, got %q", buf.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != tt.count {
				t.Fatalf("Expected %d lines, got %d: %q", tt.count, len(lines), buf.String())
			}
			for i, line := range lines {
				if tt.wantLines != nil && line != tt.wantLines[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.wantLines[i], line)
				}
				if !strings.HasSuffix(line, "x") {
					t.Errorf("line %d missing multiplier: %q", i, line)
				}
			}
		})
	}
}
