package config

import (
	"testing"
)

func TestShopRowPosition(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		rows      int
		expectedX float64
		expectedY float64
	}{
		{name: "第一行", index: 0, rows: 4, expectedX: 260.0, expectedY: 228.0},
		{name: "第三行", index: 2, rows: 4, expectedX: 260.0, expectedY: 284.0},
		{name: "越界", index: 4, rows: 4, expectedX: 0, expectedY: 0},
		{name: "负索引", index: -1, rows: 4, expectedX: 0, expectedY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := ShopRowPosition(tt.index, tt.rows)
			if gotX != tt.expectedX || gotY != tt.expectedY {
				t.Errorf("ShopRowPosition(%d, %d) = (%.1f, %.1f), expected (%.1f, %.1f)",
					tt.index, tt.rows, gotX, gotY, tt.expectedX, tt.expectedY)
			}
		})
	}
}

func TestShopPanelHeight(t *testing.T) {
	if got := ShopPanelHeight(4); got != 48+4*28+32 {
		t.Errorf("Expected height %v, got %v", 48+4*28+32, got)
	}
	if got := ShopPanelHeight(-1); got != 48+32 {
		t.Errorf("Expected negative rows to clamp, got %v", got)
	}
}
