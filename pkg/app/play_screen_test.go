package app

import (
	"testing"

	"github.com/gonewx/fortune/pkg/config"
)

func TestShopRowAt(t *testing.T) {
	t.Run("命中第二行", func(t *testing.T) {
		x, y := config.ShopRowPosition(1, 4)
		i, ok := shopRowAt(x+5, y+5)
		if !ok || i != 1 {
			t.Errorf("Expected row 1, got %d (ok=%v)", i, ok)
		}
	})

	t.Run("面板外", func(t *testing.T) {
		if _, ok := shopRowAt(10, 10); ok {
			t.Error("Expected no row outside the panel")
		}
	})
}
