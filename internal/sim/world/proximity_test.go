package world

import (
	"math"
	"testing"
)

func TestNearRadiusPlusDistance(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600})
	mustRestore(t, w, "island_0_0", KindIsland, Vec3{}, 100)

	if !w.Near(Vec3{X: 299}, 200) {
		t.Fatal("point inside radius+dist reported clear")
	}
	if w.Near(Vec3{X: 301}, 200) {
		t.Fatal("point outside radius+dist reported near")
	}
}

func TestNearKindFilter(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600})
	mustRestore(t, w, "iceberg_50_0", KindIceberg, Vec3{X: 50}, 30)

	if !w.Near(Vec3{}, 100, KindIceberg) {
		t.Fatal("iceberg filter missed the iceberg")
	}
	if w.Near(Vec3{}, 100, KindIsland, KindStructure) {
		t.Fatal("filter for other kinds matched the iceberg")
	}
	if !w.Near(Vec3{}, 100) {
		t.Fatal("unfiltered query missed the iceberg")
	}
}

func TestNearNonFinitePoint(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600})
	mustRestore(t, w, "island_0_0", KindIsland, Vec3{}, 100)
	if w.Near(Vec3{X: math.NaN()}, 1e9) {
		t.Fatal("non-finite point reported near")
	}
}

func TestNearEmptyRegistry(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600})
	if w.Near(Vec3{}, 1e9) {
		t.Fatal("empty registry reported near")
	}
}
