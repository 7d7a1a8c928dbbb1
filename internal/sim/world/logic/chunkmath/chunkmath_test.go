package chunkmath

import (
	"reflect"
	"testing"
)

func TestRingStableOrdering(t *testing.T) {
	a := Ring(Key{CX: 3, CZ: -2}, 2)
	b := Ring(Key{CX: 3, CZ: -2}, 2)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("ring ordering not stable across calls")
	}
	if len(a) != 25 {
		t.Fatalf("radius 2 ring: got %d keys, want 25", len(a))
	}
	if a[0] != (Key{CX: 3, CZ: -2}) {
		t.Fatalf("center not first: %+v", a[0])
	}
}

func TestRingNoDuplicates(t *testing.T) {
	seen := map[Key]bool{}
	for _, k := range Ring(Key{}, 3) {
		if seen[k] {
			t.Fatalf("duplicate key %+v", k)
		}
		seen[k] = true
	}
}

func TestRingZeroRadius(t *testing.T) {
	got := Ring(Key{CX: 1, CZ: 1}, 0)
	if len(got) != 1 || got[0] != (Key{CX: 1, CZ: 1}) {
		t.Fatalf("zero radius ring: %+v", got)
	}
}

func TestChebyshev(t *testing.T) {
	cases := []struct {
		a, b Key
		want int
	}{
		{Key{0, 0}, Key{0, 0}, 0},
		{Key{0, 0}, Key{1, 0}, 1},
		{Key{0, 0}, Key{1, 1}, 1},
		{Key{-2, 3}, Key{2, 0}, 4},
	}
	for _, c := range cases {
		if got := Chebyshev(c.a, c.b); got != c.want {
			t.Fatalf("Chebyshev(%+v,%+v)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}
