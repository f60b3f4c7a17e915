package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/lifecost/internal/finance"
)

func TestRenderTableAlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Mortgage", "€1,796.18"},
			{"Fuel", "€150.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	want := len([]rune(lines[0]))
	for i, l := range lines {
		if got := len([]rune(l)); got != want {
			t.Errorf("line %d width = %d, want %d: %q", i, got, want, l)
		}
	}
	if !strings.Contains(out, "€1,796.18") {
		t.Errorf("missing amount cell:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderSharesOrdersAndSkipsZero(t *testing.T) {
	out := RenderShares([]finance.Share{
		{Category: "Fuel", Fraction: 0.1},
		{Category: "Travel", Fraction: 0},
		{Category: "Mortgage", Fraction: 0.9},
	}, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Mortgage") || !strings.Contains(lines[0], "90.0%") {
		t.Errorf("first line = %q, want Mortgage at 90.0%%", lines[0])
	}
	if strings.Contains(out, "Travel") {
		t.Errorf("zero share rendered:\n%s", out)
	}
}

func TestRenderShareBarClamps(t *testing.T) {
	bar := RenderShareBar("x", 1.5, 1, 4)
	if strings.Count(bar, "█") != 4 {
		t.Errorf("RenderShareBar(1.5) = %q, want a full bar", bar)
	}
}
