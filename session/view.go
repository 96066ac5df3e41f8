package session

import "github.com/signalnine/tichu-engine/engine"

// View is the per-seat-redacted projection of a session: everything a
// client legitimately needs to render its own turn, with every other
// seat's hand reduced to a card count.
type View struct {
	Seat          engine.Seat
	Phase         engine.Phase
	OwnHand       []engine.Card
	HandSizes     [4]int
	CurrentSeat   engine.Seat
	LeadSeat      engine.Seat
	CurrentTrick  []engine.Play
	Wish          *engine.Wish
	DragonPending bool
	Out           []engine.Seat
	Tichu         [4]bool
	GrandTichu    [4]bool
	TeamScore     [2]int
	TargetScore   int
}

// ViewFor builds seat's redacted view of the current round and match.
func (s *State) ViewFor(seat engine.Seat) View {
	v := View{
		Seat:          seat,
		Phase:         s.Round.Phase,
		OwnHand:       append([]engine.Card(nil), s.Round.Hands[seat]...),
		CurrentSeat:   s.Round.CurrentSeat,
		LeadSeat:      s.Round.LeadSeat,
		CurrentTrick:  append([]engine.Play(nil), s.Round.CurrentTrick...),
		Wish:          s.Round.Wish,
		DragonPending: s.Round.DragonPending != nil,
		Out:           append([]engine.Seat(nil), s.Round.Out...),
		Tichu:         s.Round.Tichu,
		GrandTichu:    s.Round.GrandTichu,
		TeamScore:     s.Match.TeamScore,
		TargetScore:   s.Match.TargetScore,
	}
	for other := engine.Seat(0); int(other) < len(v.HandSizes); other++ {
		v.HandSizes[other] = len(s.Round.Hands[other])
	}
	return v
}
