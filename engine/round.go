package engine

import "github.com/google/uuid"

// Phase is the round's position in the deal -> ... -> round-end lifecycle.
type Phase uint8

const (
	PhaseDealt Phase = iota
	PhaseGrandTichuWindow
	PhaseExchange
	PhasePlay
	PhaseRoundEnded
)

// Wish is the persistent constraint set by playing Mah Jong as a single.
type Wish struct {
	Rank   uint8
	Active bool
}

// DragonGift blocks further play until the Dragon's winner names an
// opponent to receive the trick.
type DragonGift struct {
	Giver  Seat
	Cards  []Card
	Points int
}

// Play is one seat's contribution to the current trick.
type Play struct {
	Seat  Seat
	Cards []Card
	Combo Combination
}

// SeatStack accumulates the cards (and their point total) a seat has won,
// scored at round end.
type SeatStack struct {
	Cards      []Card
	CardPoints int
}

// ExchangeSlot is one seat's three outgoing exchange cards, in canonical
// recipient order: [0]=next seat clockwise, [1]=partner, [2]=previous seat.
type ExchangeSlot struct {
	Cards     [3]Card
	Submitted bool
}

// Round is the complete, mutable state of a single deal. It is created at
// deal time, mutated exclusively through the functions in this package, and
// discarded at round end once its deltas have folded into a Match.
type Round struct {
	ID uuid.UUID

	Phase Phase

	Hands   [numSeats][]Card
	Hidden6 [numSeats][]Card

	Revealed        [numSeats]bool
	GrandTichu      [numSeats]bool
	Tichu           [numSeats]bool
	FirstCardPlayed [numSeats]bool

	// LeadSeat is the seat that led (or is to lead) the current trick;
	// CurrentSeat is the authoritative "who acts next" pointer. Turn order
	// is always clockwise from the acting seat (see activeSeatsAfter).
	LeadSeat    Seat
	CurrentSeat Seat
	Passed      [numSeats]bool
	Out         []Seat

	CurrentTrick []Play

	// MahJongHolder is fixed once exchange completes: the seat that must
	// lead the first trick and include Mah Jong in that opening play.
	MahJongHolder Seat
	MahJongPlayed bool

	Wish          *Wish
	DragonPending *DragonGift
	DogPriority   *Seat

	Stacks [numSeats]SeatStack

	Exchange [numSeats]ExchangeSlot

	// History is the totally-ordered sequence of accepted Play and Pass
	// intents for this round (see §5 ordering guarantees and the
	// replay/restore supplement in SPEC_FULL.md). Declarations, exchange
	// submissions and Dragon recipient choices are not recorded here, and
	// rejected intents never append here.
	History []HistoryEntry
}

// HistoryEntry records one accepted intent for replay/audit purposes.
type HistoryEntry struct {
	Seat        Seat
	Description string
}

// NewRound builds a freshly dealt round from a shuffled 56-card deck. The
// Mah Jong holder becomes the first current seat once exchange completes;
// until then the round sits in PhaseGrandTichuWindow.
func NewRound(deck []Card) *Round {
	hands, hidden := Deal(deck)
	r := &Round{
		ID:      uuid.New(),
		Phase:   PhaseGrandTichuWindow,
		Hands:   hands,
		Hidden6: hidden,
	}
	return r
}

// mahJongHolder returns the seat currently holding Mah Jong and true, or
// (0, false) if no seat holds it (should never happen once hands are
// complete).
func (r *Round) mahJongHolder() (Seat, bool) {
	for seat := Seat(0); seat < numSeats; seat++ {
		for _, c := range r.Hands[seat] {
			if c.Kind == KindMahJong {
				return seat, true
			}
		}
	}
	return 0, false
}

// hasCard reports whether seat's hand contains card (by value equality).
func (r *Round) hasCard(seat Seat, card Card) bool {
	for _, c := range r.Hands[seat] {
		if c == card {
			return true
		}
	}
	return false
}

// handHasMultiset reports whether seat's hand contains every card in cards,
// respecting duplicate counts (two requested cards of the same identity
// require two in hand — though no identity ever repeats in this deck).
func (r *Round) handHasMultiset(seat Seat, cards []Card) bool {
	remaining := append([]Card(nil), r.Hands[seat]...)
	for _, want := range cards {
		found := -1
		for i, have := range remaining {
			if have == want {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}

// removeFromHand removes cards (a multiset) from seat's hand. Caller must
// have already verified possession via handHasMultiset.
func (r *Round) removeFromHand(seat Seat, cards []Card) {
	// Work on a copy so a cards slice that aliases the hand is not shifted
	// underneath the loop.
	hand := append([]Card(nil), r.Hands[seat]...)
	for _, want := range cards {
		for i, have := range hand {
			if have == want {
				hand = append(hand[:i], hand[i+1:]...)
				break
			}
		}
	}
	r.Hands[seat] = hand
}

// isOut reports whether seat has already finished the round.
func (r *Round) isOut(seat Seat) bool {
	for _, s := range r.Out {
		if s == seat {
			return true
		}
	}
	return false
}

// activeSeatsAfter returns the other seats that are neither out nor
// empty-handed, starting just after from, in clockwise order. from itself
// is never included.
func (r *Round) activeSeatsAfter(from Seat) []Seat {
	var out []Seat
	order := seatsInOrder(from)
	for _, s := range order[1:] {
		if !r.isOut(s) && len(r.Hands[s]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Snapshot is a plain-struct copy of Round suitable for persistence or
// round-trip testing; it shares no backing arrays with the live Round.
type Snapshot struct {
	Round Round
}

// Snapshot deep-copies r for later restoration.
func (r *Round) Snapshot() Snapshot {
	clone := *r
	for s := Seat(0); s < numSeats; s++ {
		clone.Hands[s] = append([]Card(nil), r.Hands[s]...)
		clone.Hidden6[s] = append([]Card(nil), r.Hidden6[s]...)
		clone.Stacks[s] = SeatStack{
			Cards:      append([]Card(nil), r.Stacks[s].Cards...),
			CardPoints: r.Stacks[s].CardPoints,
		}
	}
	clone.Out = append([]Seat(nil), r.Out...)
	clone.CurrentTrick = append([]Play(nil), r.CurrentTrick...)
	for i := range clone.CurrentTrick {
		clone.CurrentTrick[i].Cards = append([]Card(nil), r.CurrentTrick[i].Cards...)
		clone.CurrentTrick[i].Combo.Cards = append([]Card(nil), r.CurrentTrick[i].Combo.Cards...)
	}
	clone.History = append([]HistoryEntry(nil), r.History...)
	if r.Wish != nil {
		w := *r.Wish
		clone.Wish = &w
	}
	if r.DragonPending != nil {
		d := *r.DragonPending
		d.Cards = append([]Card(nil), r.DragonPending.Cards...)
		clone.DragonPending = &d
	}
	if r.DogPriority != nil {
		p := *r.DogPriority
		clone.DogPriority = &p
	}
	return Snapshot{Round: clone}
}

// Restore reconstructs an independent *Round from a Snapshot.
func Restore(snap Snapshot) *Round {
	r := snap.Round
	out := r.Snapshot().Round
	return &out
}
