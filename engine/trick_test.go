package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dealtRound builds a Round already through declarations and exchange
// (each seat passes the first three cards of its hand to the next seat,
// its partner and the previous seat) with the Mah Jong holder's
// first-play obligation marked as met, so tests can drive Play/Pass
// directly without opening with the Mah Jong.
func dealtRound(t *testing.T) *Round {
	t.Helper()
	deck := BuildDeck()
	Shuffle(deck, &fixedOrder{})
	r := NewRound(deck)
	for seat := Seat(0); seat < numSeats; seat++ {
		require.NoError(t, RevealHidden6(r, seat))
	}
	require.Equal(t, PhaseExchange, r.Phase)
	for seat := Seat(0); seat < numSeats; seat++ {
		hand := r.Hands[seat]
		var cards [3]Card
		copy(cards[:], hand[:3])
		require.NoError(t, SubmitExchange(r, seat, cards))
	}
	require.Equal(t, PhasePlay, r.Phase)
	r.MahJongPlayed = true
	return r
}

// fixedOrder is a degenerate Rand that always returns 0, so every
// Fisher-Yates step swaps with index 0 and the shuffled deck is simply
// BuildDeck's order rotated left by one. The deal (and therefore Mah
// Jong's seat) is fixed and easy to reason about in tests.
type fixedOrder struct{}

func (*fixedOrder) IntN(n int) int { return 0 }

func TestScenario1_DogLeadTransfersToPartner(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	r.Hands[lead] = append(r.Hands[lead], Dog())

	events, err := ApplyPlay(r, lead, []Card{Dog()}, nil)
	require.NoError(t, err)
	require.Contains(t, events, DogLeadTransferred{To: lead.Partner()})
	require.Equal(t, lead.Partner(), r.LeadSeat)
	require.Equal(t, lead.Partner(), r.CurrentSeat)
	require.Empty(t, r.CurrentTrick)
	require.NotNil(t, r.DogPriority)
	require.Equal(t, lead.Partner(), *r.DogPriority)

	_, err = ApplyPass(r, lead.Partner())
	require.ErrorIs(t, err, ErrMustLead)
}

func TestScenario2_StraightFlushBeatsFourOfAKind(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	other := lead.Next()

	r.Hands[lead] = []Card{
		Standard(Clubs, RankKing), Standard(Hearts, RankKing),
		Standard(Spades, RankKing), Standard(Diamonds, RankKing),
	}
	r.Hands[other] = []Card{
		Standard(Hearts, 9), Standard(Hearts, 10), Standard(Hearts, RankJack),
		Standard(Hearts, RankQueen), Standard(Hearts, RankKing),
	}

	_, err := ApplyPlay(r, lead, r.Hands[lead], nil)
	require.NoError(t, err)

	events, err := ApplyPlay(r, other, r.Hands[other], nil)
	require.NoError(t, err)
	require.Equal(t, other.Next(), r.CurrentSeat)
	require.NotEmpty(t, events)
}

func TestWeakerBombCannotInterruptAStrongerBomb(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	bomber := lead.Next()

	r.Hands[lead] = []Card{
		Standard(Hearts, 9), Standard(Hearts, 10), Standard(Hearts, RankJack),
		Standard(Hearts, RankQueen), Standard(Hearts, RankKing),
	}
	r.Hands[bomber] = []Card{
		Standard(Clubs, 7), Standard(Hearts, 7), Standard(Spades, 7), Standard(Diamonds, 7),
	}

	_, err := ApplyPlay(r, lead, r.Hands[lead], nil)
	require.NoError(t, err)

	_, err = ApplyPlay(r, bomber, r.Hands[bomber], nil)
	require.ErrorIs(t, err, ErrDoesNotBeatCurrent)
}

func TestPhoenixBeatsAHigherSingleViaContextualValue(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	other := lead.Next()

	r.Hands[lead] = []Card{Standard(Clubs, RankKing)}
	r.Hands[other] = []Card{Phoenix()}

	_, err := ApplyPlay(r, lead, r.Hands[lead], nil)
	require.NoError(t, err)

	events, err := ApplyPlay(r, other, r.Hands[other], nil)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, other, r.CurrentTrick[len(r.CurrentTrick)-1].Seat)
	require.Equal(t, float64(RankKing)+0.5, r.CurrentTrick[len(r.CurrentTrick)-1].Combo.Value)
}

func TestDogLeadIsRecordedInHistory(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	r.Hands[lead] = append(r.Hands[lead], Dog())
	before := len(r.History)

	_, err := ApplyPlay(r, lead, []Card{Dog()}, nil)
	require.NoError(t, err)
	require.Len(t, r.History, before+1)
	require.Equal(t, lead, r.History[len(r.History)-1].Seat)
}

func TestScenario3_DragonGiftToOpponent(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	r.Hands[lead] = append(r.Hands[lead], Dragon())

	_, err := ApplyPlay(r, lead, []Card{Dragon()}, nil)
	require.NoError(t, err)

	others := r.activeSeatsAfter(lead)
	var lastEvents []Event
	for _, seat := range others {
		events, err := ApplyPass(r, seat)
		require.NoError(t, err)
		lastEvents = events
	}
	require.Contains(t, lastEvents, DragonGiftPending{Giver: lead})
	require.NotNil(t, r.DragonPending)

	_, err = SelectDragonRecipient(r, lead, lead.Partner())
	require.ErrorIs(t, err, ErrDragonRecipientMustBeOpponent)

	opponent := lead.Next()
	_, err = SelectDragonRecipient(r, lead, opponent)
	require.NoError(t, err)
	require.Nil(t, r.DragonPending)
	require.Equal(t, 25, r.Stacks[opponent].CardPoints)
	require.Equal(t, lead, r.LeadSeat)
}

func TestScenario4_MahJongWishPersistsUntilSatisfied(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat

	r.Hands[lead] = append([]Card{MahJong()}, r.Hands[lead]...)
	other := lead.Next()
	r.Hands[other] = append(r.Hands[other], Standard(Clubs, 10))

	wish := uint8(10)
	_, err := ApplyPlay(r, lead, []Card{MahJong()}, &wish)
	require.NoError(t, err)
	require.NotNil(t, r.Wish)
	require.True(t, r.Wish.Active)
	require.Equal(t, uint8(10), r.Wish.Rank)

	_, err = ApplyPass(r, other)
	require.ErrorIs(t, err, ErrWishUnfulfilled)

	events, err := ApplyPlay(r, other, []Card{Standard(Clubs, 10)}, nil)
	require.NoError(t, err)
	require.Contains(t, events, WishCleared{})
	require.False(t, r.Wish.Active)
}

func TestBombForbiddenWhileDogInTrick(t *testing.T) {
	r := dealtRound(t)
	r.CurrentTrick = append(r.CurrentTrick, Play{Seat: r.CurrentSeat, Cards: []Card{Dog()}, Combo: classifySingle(Dog())})

	bomber := r.CurrentSeat.Next()
	r.Hands[bomber] = []Card{
		Standard(Clubs, 3), Standard(Hearts, 3), Standard(Spades, 3), Standard(Diamonds, 3),
	}
	_, err := ApplyPlay(r, bomber, r.Hands[bomber], nil)
	require.ErrorIs(t, err, ErrBombForbiddenDogInTrick)
}

func TestOutOfTurnBombBypassesTurnGuard(t *testing.T) {
	r := dealtRound(t)
	lead := r.CurrentSeat
	bomber := lead.Next().Next()

	r.Hands[lead] = []Card{Standard(Clubs, 2)}
	r.Hands[bomber] = []Card{
		Standard(Clubs, 9), Standard(Hearts, 9), Standard(Spades, 9), Standard(Diamonds, 9),
	}

	_, err := ApplyPlay(r, lead, []Card{Standard(Clubs, 2)}, nil)
	require.NoError(t, err)

	_, err = ApplyPlay(r, bomber, r.Hands[bomber], nil)
	require.NoError(t, err)
	require.Equal(t, bomber, r.CurrentTrick[len(r.CurrentTrick)-1].Seat)
}
