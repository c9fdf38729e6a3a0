package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"100", "100", true},
		{"1 200,50 ₽", "1200.5", true},
		{"1 234,56₽", "1234.56", true},
		{"1.200,50", "1200.5", true},
		{"99.90", "99.9", true},
		{"0", "0", true},
		{"руб.", "", false},
		{"", "", false},
		{"цена", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePrice(tt.input)
		if ok != tt.ok {
			t.Errorf("ParsePrice(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		expected := decimal.RequireFromString(tt.expected)
		if !got.Equal(expected) {
			t.Errorf("ParsePrice(%q) = %s, expected %s", tt.input, got, expected)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"1", 1, true},
		{" 12 ", 12, true},
		{"3.0", 3, true},
		{"0", 0, false},
		{"-2", 0, false},
		{"2.5", 0, false},
		{"много", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseQuantity(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseQuantity(%q) = (%d, %v), expected (%d, %v)",
				tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}
