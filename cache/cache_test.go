package cache

import (
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("Capacity() = %d, want 100", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if got := New[string, int](0).Capacity(); got != DefaultCapacity {
		t.Errorf("New(0).Capacity() = %d, want %d", got, DefaultCapacity)
	}
}

func TestGetPut(t *testing.T) {
	c := New[string, int](10)
	c.Put("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing key")
	}

	c.Put("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	var evicted []string
	c.OnEvict = func(k string, _ int) { evicted = append(evicted, k) }

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Get("a") // b is now the oldest
	c.Put("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted = %v, want [b]", evicted)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}

	for i := 0; i < 3; i++ {
		if got := c.GetOrCreate(7, create); got != "v" {
			t.Errorf("GetOrCreate() = %q, want v", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int, int](8)
	for i := range 5 {
		c.Put(i, i)
	}
	c.Delete(2)
	c.Delete(42)
	if c.Len() != 4 {
		t.Errorf("Len() after Delete = %d, want 4", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Put(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](2)
	for i := range 4 {
		c.Put(strconv.Itoa(i), i)
	}
	c.Get("3")
	c.Get("0")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Evictions != 2 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 2 evictions", s)
	}
	if s.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", s.HitRate())
	}
	if (Stats{}).HitRate() != 0 {
		t.Error("HitRate() of an unused cache should be 0")
	}
}
