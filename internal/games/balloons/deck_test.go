package balloons

import (
	"math/rand"
	"testing"
)

func TestDeckCyclesWholeCatalog(t *testing.T) {
	catalog := Catalog()
	d := NewDeck(catalog, rand.New(rand.NewSource(7)))

	if d.Size() != len(catalog) {
		t.Fatalf("Size = %d, want %d", d.Size(), len(catalog))
	}

	for cycle := 0; cycle < 3; cycle++ {
		seen := make(map[string]int)
		for i := 0; i < len(catalog); i++ {
			seen[d.Take().Label]++
		}
		for _, ev := range catalog {
			if seen[ev.Label] != 1 {
				t.Errorf("cycle %d: %q drawn %d times, want 1", cycle, ev.Label, seen[ev.Label])
			}
		}
		if d.Remaining() != 0 {
			t.Errorf("cycle %d: Remaining = %d, want 0", cycle, d.Remaining())
		}
	}

	if d.Refills() != 3 {
		t.Errorf("Refills = %d, want 3", d.Refills())
	}
}

func TestDeckEmptyCatalogUsesBuiltin(t *testing.T) {
	d := NewDeck(nil, rand.New(rand.NewSource(1)))
	if d.Size() != len(Catalog()) {
		t.Fatalf("Size = %d, want %d", d.Size(), len(Catalog()))
	}
	if ev := d.Take(); ev.Label == "" {
		t.Error("expected a labeled event")
	}
}

func TestDeckSameSeedSameOrder(t *testing.T) {
	a := NewDeck(Catalog(), rand.New(rand.NewSource(42)))
	b := NewDeck(Catalog(), rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		if x, y := a.Take(), b.Take(); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x.Label, y.Label)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Catalog()
	if len(cat) != 22 {
		t.Fatalf("catalog has %d events, want 22", len(cat))
	}
	cat[0].Delta = 9999
	if Catalog()[0].Delta == 9999 {
		t.Error("Catalog must return a copy")
	}
}
