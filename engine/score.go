package engine

// This file implements C7: round scoring and match accumulation. It is
// the generalized replacement for the teacher's scoring.go
// EvaluateContracts: instead of resolving bet contracts against a final
// table state, EndRound resolves a finished Tichu round into a signed
// per-team point delta.

// RoundShouldEnd reports whether the round has reached a terminal
// condition: either three seats have gone out (a tailender remains) or
// the first two finishers are partners (a double victory).
func RoundShouldEnd(r *Round) bool {
	if len(r.Out) >= 3 {
		return true
	}
	if len(r.Out) >= 2 && r.Out[0].Team() == r.Out[1].Team() {
		return true
	}
	return false
}

// EndRound scores a terminal round and marks it PhaseRoundEnded. It
// returns the signed delta applied to each team (TeamA, TeamB) and the
// chronological finish order (not including a tailender who never went
// out). Calling EndRound on a round that is not terminal is a caller
// error reported via ErrEngineInvariant.
func EndRound(r *Round) ([2]int, []Seat, error) {
	if !RoundShouldEnd(r) {
		return [2]int{}, nil, ErrEngineInvariant.Wrap("round has not reached a terminal condition")
	}
	if r.Phase == PhaseRoundEnded {
		return [2]int{}, nil, ErrEngineInvariant.Wrap("round already ended")
	}

	var deltas [2]int
	finishOrder := append([]Seat(nil), r.Out...)

	if len(r.Out) >= 2 && r.Out[0].Team() == r.Out[1].Team() {
		winningTeam := r.Out[0].Team()
		deltas[winningTeam] += 200
	} else {
		tailender := soleRemainingSeat(r)
		for seat := Seat(0); seat < numSeats; seat++ {
			if seat == tailender {
				continue
			}
			deltas[seat.Team()] += r.Stacks[seat].CardPoints
		}
		firstOut := r.Out[0]
		// Tailender's won trick-pile points go to whoever finished first;
		// the cards still in hand go to the opposing team.
		deltas[firstOut.Team()] += tailenderTrickPoints(r, tailender)
		deltas[tailender.Team().opponent()] += handPoints(r.Hands[tailender])
	}

	var firstFinisher Seat
	hasFirstFinisher := len(r.Out) > 0
	if hasFirstFinisher {
		firstFinisher = r.Out[0]
	}
	for seat := Seat(0); seat < numSeats; seat++ {
		finishedFirst := hasFirstFinisher && seat == firstFinisher
		deltas[seat.Team()] += declarationBonus(r, seat, finishedFirst)
	}

	r.Phase = PhaseRoundEnded
	return deltas, finishOrder, nil
}

func (t Team) opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// declarationBonus returns the Tichu/Grand Tichu point adjustment for
// seat: +bonus if seat declared and finished first, -bonus otherwise.
func declarationBonus(r *Round, seat Seat, finishedFirst bool) int {
	switch {
	case r.GrandTichu[seat]:
		if finishedFirst {
			return 200
		}
		return -200
	case r.Tichu[seat]:
		if finishedFirst {
			return 100
		}
		return -100
	default:
		return 0
	}
}

// tailenderTrickPoints returns the points sitting in the tailender's won
// trick stack, which pass to whoever finished first regardless of team.
func tailenderTrickPoints(r *Round, tailender Seat) int {
	return r.Stacks[tailender].CardPoints
}

func handPoints(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.CardPoints()
	}
	return total
}

// soleRemainingSeat returns the one seat not yet in r.Out. Only valid
// when len(r.Out) == 3.
func soleRemainingSeat(r *Round) Seat {
	for seat := Seat(0); seat < numSeats; seat++ {
		if !r.isOut(seat) {
			return seat
		}
	}
	panic(ErrEngineInvariant.Wrap("no seat remains outside Out with three finishers").Error())
}

// Match accumulates round deltas across a full game to the target score.
type Match struct {
	TargetScore  int
	TeamScore    [2]int
	RoundsPlayed int
}

// NewMatch starts a fresh match toward target (1000 by the standard rules).
func NewMatch(target int) *Match {
	return &Match{TargetScore: target}
}

// ApplyRoundResult folds a round's deltas into the match total.
func (m *Match) ApplyRoundResult(deltas [2]int) {
	m.TeamScore[TeamA] += deltas[TeamA]
	m.TeamScore[TeamB] += deltas[TeamB]
	m.RoundsPlayed++
}

// Winner reports whether the match has concluded: a team has reached the
// target AND strictly leads. A round that leaves both teams at or above
// target with an exact tie continues play until some future round
// boundary produces a strict leader (see DESIGN.md).
func (m *Match) Winner() (Team, bool) {
	aReached := m.TeamScore[TeamA] >= m.TargetScore
	bReached := m.TeamScore[TeamB] >= m.TargetScore
	switch {
	case aReached && bReached:
		if m.TeamScore[TeamA] == m.TeamScore[TeamB] {
			return 0, false
		}
		if m.TeamScore[TeamA] > m.TeamScore[TeamB] {
			return TeamA, true
		}
		return TeamB, true
	case aReached:
		return TeamA, true
	case bReached:
		return TeamB, true
	default:
		return 0, false
	}
}
