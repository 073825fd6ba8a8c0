package utils

import "testing"

func TestFormatPeso(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "Zero", amount: 0, want: "₱0"},
		{name: "Below thousand", amount: 950, want: "₱950"},
		{name: "Thousands", amount: 50000, want: "₱50,000"},
		{name: "Millions", amount: 1234567, want: "₱1,234,567"},
		{name: "Negative is invalid", amount: -5, want: "₱0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPeso(tt.amount); got != tt.want {
				t.Errorf("FormatPeso(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
