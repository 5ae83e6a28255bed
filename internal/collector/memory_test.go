package collector

import "testing"

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		name  string
		used  uint64
		total uint64
		want  float32
	}{
		{"zero total guards divide by zero", 1024, 0, 0},
		{"zero used", 0, 4096, 0},
		{"half used", 2048, 4096, 50},
		{"fully used", 4096, 4096, 100},
		{"large values", 8 << 40, 16 << 40, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usedPercent(tt.used, tt.total)
			if got != tt.want {
				t.Errorf("usedPercent(%d, %d) = %v, want %v", tt.used, tt.total, got, tt.want)
			}
		})
	}
}

func TestUsedPercent_WithinBounds(t *testing.T) {
	cases := []struct{ used, total uint64 }{
		{0, 1}, {1, 1}, {500, 1000}, {999999, 1000000},
	}
	for _, c := range cases {
		got := usedPercent(c.used, c.total)
		if got < 0 || got > 100 {
			t.Errorf("usedPercent(%d, %d) = %v, out of [0,100]", c.used, c.total, got)
		}
	}
}
