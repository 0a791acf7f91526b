package secret

import "testing"

func TestGenerateStaysInDefaultRange(t *testing.T) {
	p := New()
	for i := 0; i < 10000; i++ {
		v := p.Generate(0, 100)
		if v < 0 || v >= 100 {
			t.Fatalf("expected value in [0,100), got %d", v)
		}
	}
}

func TestGenerateCoversRange(t *testing.T) {
	p := NewSeeded(42)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[p.Generate(10, 15)] = true
	}
	for v := 10; v < 15; v++ {
		if !seen[v] {
			t.Fatalf("expected %d to be generated at least once", v)
		}
	}
	if len(seen) != 5 {
		t.Fatalf("expected exactly 5 distinct values, got %d", len(seen))
	}
}

func TestGenerateSingleValueRange(t *testing.T) {
	p := New()
	for i := 0; i < 10; i++ {
		if v := p.Generate(7, 8); v != 7 {
			t.Fatalf("expected 7, got %d", v)
		}
	}
}

func TestSourceIsLazyAndReused(t *testing.T) {
	p := New()
	if p.rng != nil {
		t.Fatal("expected no source before first use")
	}
	p.Generate(0, 100)
	first := p.rng
	if first == nil {
		t.Fatal("expected source after first use")
	}
	p.Generate(0, 100)
	if p.rng != first {
		t.Fatal("expected source to be reused")
	}
}

func TestSeededProvidersAgree(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 50; i++ {
		if x, y := a.Generate(0, 100), b.Generate(0, 100); x != y {
			t.Fatalf("expected identical sequences, got %d and %d at %d", x, y, i)
		}
	}
}
