package cache

import (
	"testing"
	"time"
)

func TestTTLCache(t *testing.T) {
	c := NewTTL[[]string](time.Hour)

	if _, ok := c.Get(); ok {
		t.Error("Empty cache should miss")
	}

	c.Set([]string{"Travel", "Food"})
	value, ok := c.Get()
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if len(value) != 2 || value[0] != "Travel" {
		t.Errorf("Unexpected cached value: %v", value)
	}

	c.Invalidate()
	if _, ok := c.Get(); ok {
		t.Error("Invalidated cache should miss")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTL[int](10 * time.Millisecond)

	c.Set(42)
	if _, ok := c.Get(); !ok {
		t.Fatal("Fresh value should hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(); ok {
		t.Error("Expired value should miss")
	}
}
