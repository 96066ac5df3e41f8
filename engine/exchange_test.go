package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allRevealed(t *testing.T) *Round {
	t.Helper()
	r := freshRound(t)
	for seat := Seat(0); seat < numSeats; seat++ {
		require.NoError(t, RevealHidden6(r, seat))
	}
	return r
}

func TestSubmitExchangeRejectsOutsideExchangePhase(t *testing.T) {
	r := freshRound(t)
	var cards [3]Card
	copy(cards[:], r.Hidden6[0][:3])
	err := SubmitExchange(r, Seat(0), cards)
	require.ErrorIs(t, err, ErrWrongPhase)
}

func TestSubmitExchangeRejectsDuplicateCards(t *testing.T) {
	r := allRevealed(t)
	seat := Seat(0)
	card := r.Hands[seat][0]
	err := SubmitExchange(r, seat, [3]Card{card, card, r.Hands[seat][1]})
	require.ErrorIs(t, err, ErrExchangeBad)
}

func TestSubmitExchangeRejectsCardsNotInHand(t *testing.T) {
	r := allRevealed(t)
	seat := Seat(0)
	foreign := Seat(1)
	var outsider Card
	for _, c := range r.Hands[foreign] {
		found := false
		for _, mine := range r.Hands[seat] {
			if mine == c {
				found = true
				break
			}
		}
		if !found {
			outsider = c
			break
		}
	}
	cards := [3]Card{r.Hands[seat][0], r.Hands[seat][1], outsider}
	err := SubmitExchange(r, seat, cards)
	require.ErrorIs(t, err, ErrExchangeBad)
}

func TestSubmitExchangeIsWriteOnce(t *testing.T) {
	r := allRevealed(t)
	seat := Seat(0)
	var cards [3]Card
	copy(cards[:], r.Hands[seat][:3])
	require.NoError(t, SubmitExchange(r, seat, cards))

	var more [3]Card
	copy(more[:], r.Hands[seat][3:6])
	err := SubmitExchange(r, seat, more)
	require.ErrorIs(t, err, ErrExchangeBad)
}

func TestResolveExchangeDistributesToCanonicalRecipients(t *testing.T) {
	r := allRevealed(t)

	picks := [numSeats][3]Card{}
	for seat := Seat(0); seat < numSeats; seat++ {
		copy(picks[seat][:], r.Hands[seat][:3])
	}
	for seat := Seat(0); seat < numSeats; seat++ {
		require.NoError(t, SubmitExchange(r, seat, picks[seat]))
	}
	require.Equal(t, PhasePlay, r.Phase)

	for g := Seat(0); g < numSeats; g++ {
		require.True(t, r.hasCard(g.Next(), picks[g][0]))
		require.True(t, r.hasCard(g.Partner(), picks[g][1]))
		require.True(t, r.hasCard(g.Prev(), picks[g][2]))
	}

	holder, ok := r.mahJongHolder()
	require.True(t, ok)
	require.Equal(t, holder, r.MahJongHolder)
	require.Equal(t, holder, r.LeadSeat)
	require.Equal(t, holder, r.CurrentSeat)
}

func TestResolveExchangeTotalHandSizeIsConserved(t *testing.T) {
	r := allRevealed(t)
	for seat := Seat(0); seat < numSeats; seat++ {
		var cards [3]Card
		copy(cards[:], r.Hands[seat][:3])
		require.NoError(t, SubmitExchange(r, seat, cards))
	}
	total := 0
	for seat := Seat(0); seat < numSeats; seat++ {
		total += len(r.Hands[seat])
	}
	require.Equal(t, DeckSize, total)
}
