package balloons

import "math/rand"

// Deck is a shuffle bag over the event catalog. Every event is drawn once
// per cycle before any repeats.
type Deck struct {
	catalog []CreditEvent
	bag     []CreditEvent
	rng     *rand.Rand
	refills int
}

// NewDeck creates a deck over catalog. The bag starts empty, so the first
// Take shuffles. An empty catalog is replaced by the built-in one.
func NewDeck(catalog []CreditEvent, rng *rand.Rand) *Deck {
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}
	return &Deck{
		catalog: append([]CreditEvent(nil), catalog...),
		bag:     make([]CreditEvent, 0, len(catalog)),
		rng:     rng,
	}
}

// Take pops one event from the bag, refilling it first if it is empty.
func (d *Deck) Take() CreditEvent {
	if len(d.bag) == 0 {
		d.Refill()
	}
	last := len(d.bag) - 1
	ev := d.bag[last]
	d.bag = d.bag[:last]
	return ev
}

// Refill replaces the bag with a freshly shuffled copy of the full catalog.
func (d *Deck) Refill() {
	d.bag = append(d.bag[:0], d.catalog...)

	// Fisher-Yates
	for i := len(d.bag) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.bag[i], d.bag[j] = d.bag[j], d.bag[i]
	}
	d.refills++
}

// Remaining returns how many events are left before the next refill.
func (d *Deck) Remaining() int {
	return len(d.bag)
}

// Size returns the catalog size, i.e. the cycle length.
func (d *Deck) Size() int {
	return len(d.catalog)
}

// Refills returns how many times the bag has been shuffled.
func (d *Deck) Refills() int {
	return d.refills
}
