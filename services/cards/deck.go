package cards

import "math/rand"

// Deck is a shuffled draw pile for one card type of one match.
// Not safe for concurrent use, callers go through the room actor.
type Deck struct {
	deckType  DeckType
	remaining []Card
	rng       *rand.Rand
}

func NewDeck(t DeckType, rng *rand.Rand) *Deck {
	d := &Deck{deckType: t, rng: rng}
	d.reshuffle()
	return d
}

// Draw pops the front card, reshuffling a fresh copy of the full
// definition set when the pile runs out.
func (d *Deck) Draw() Card {
	if len(d.remaining) == 0 {
		d.reshuffle()
	}
	card := d.remaining[0]
	d.remaining = d.remaining[1:]
	return card
}

func (d *Deck) Remaining() int { return len(d.remaining) }

func (d *Deck) reshuffle() {
	defs := definitions(d.deckType)
	d.remaining = make([]Card, len(defs))
	copy(d.remaining, defs)
	d.rng.Shuffle(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
}
