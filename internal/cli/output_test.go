package cli

import (
	"bytes"
	"strings"
	"testing"

	"chart-prophet/internal/classify"
)

func testOutput(colorEnabled bool) (*Output, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Output{writer: buf, colorEnabled: colorEnabled}, buf
}

func TestCategorized(t *testing.T) {
	output, _ := testOutput(true)

	tests := []struct {
		name     string
		category classify.Category
		want     string
	}{
		{name: "buy is green", category: classify.CategoryBuy, want: ColorGreen},
		{name: "bullish is green", category: classify.CategoryBullish, want: ColorGreen},
		{name: "win is green", category: classify.Category("win"), want: ColorGreen},
		{name: "sell is red", category: classify.CategorySell, want: ColorRed},
		{name: "loss is red", category: classify.Category("loss"), want: ColorRed},
		{name: "hold is yellow", category: classify.CategoryHold, want: ColorYellow},
		{name: "pending is yellow", category: classify.Category("pending"), want: ColorYellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := output.Categorized(tt.category, "x")
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Categorized(%v) = %q, want %q prefix", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategorizedColorDisabled(t *testing.T) {
	output, _ := testOutput(false)
	if got := output.Categorized(classify.CategoryBuy, "BUY"); got != "BUY" {
		t.Errorf("Categorized() = %q, want plain text", got)
	}
}

func TestTableRender(t *testing.T) {
	output, buf := testOutput(false)

	table := NewTable(output, "ID", "Symbol", "P/L")
	table.AddRow("1", "AAPL", "+$250.00")
	table.AddRow("42", "INFY", "-$12.50")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want header + separator + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "Symbol") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "AAPL") || !strings.Contains(lines[3], "-$12.50") {
		t.Errorf("rows = %q / %q", lines[2], lines[3])
	}
	// Columns align on the widest cell.
	if strings.Index(lines[2], "AAPL") != strings.Index(lines[3], "INFY") {
		t.Error("columns not aligned")
	}
}

func TestTableWidthsIgnoreANSICodes(t *testing.T) {
	output, buf := testOutput(false)

	table := NewTable(output, "Signal")
	table.AddRow(ColorGreen + "BUY" + ColorReset)
	table.AddRow("HOLD")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	colored, plain := lines[2], lines[3]
	if len(stripANSI(colored)) != len(plain) {
		t.Errorf("padded widths differ: %q vs %q", colored, plain)
	}
}
