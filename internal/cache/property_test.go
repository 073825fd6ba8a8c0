package cache

import (
	"testing"
	"time"

	"propertyhub/internal/model"
)

func TestPropertyCache_SetAndGet(t *testing.T) {
	c, err := NewPropertyCache(100, time.Minute)
	if err != nil {
		t.Fatalf("NewPropertyCache() error = %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("modern-condo-bgc"); ok {
		t.Fatal("expected miss on empty cache")
	}

	p := &model.Property{Slug: "modern-condo-bgc", Title: "Modern 2BR Condo in BGC", PriceAmount: 85000}
	c.Set(p)
	c.Wait()

	got, ok := c.Get("modern-condo-bgc")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.PriceAmount != 85000 {
		t.Errorf("PriceAmount = %d, want 85000", got.PriceAmount)
	}

	// callers get copies
	got.PriceAmount = 1
	again, _ := c.Get("modern-condo-bgc")
	if again.PriceAmount != 85000 {
		t.Errorf("cached value was mutated through a returned copy")
	}
}
