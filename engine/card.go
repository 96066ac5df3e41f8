package engine

// Kind tags the closed set of card identities in a Tichu deck.
type Kind uint8

const (
	KindStandard Kind = iota
	KindMahJong
	KindDog
	KindPhoenix
	KindDragon
)

// Suit is one of the four standard suits. Specials carry SuitNone.
type Suit uint8

const (
	SuitNone Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

// standardRanks runs 2..14, with 11=Jack, 12=Queen, 13=King, 14=Ace.
const (
	RankTwo   uint8 = 2
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
	RankAce   uint8 = 14

	// mahJongValue is the Mah Jong's position in straights/sequences: below Two.
	mahJongValue uint8 = 1
	// dragonValue sits above Ace so the Dragon always outranks a single Ace.
	dragonValue uint8 = 16
)

// Card is an immutable identity: exactly one of Standard, Mah Jong, Dog,
// Phoenix, or Dragon. Suit and Rank are meaningful only for Standard cards;
// Value() gives the rank-ordering value usable across kinds (except Dog and
// Phoenix, for which it returns 0; the Phoenix's played value is bound
// contextually in combo.go and trick.go).
type Card struct {
	Kind Kind
	Suit Suit
	Rank uint8 // 2..14 for Standard; unused otherwise.
}

// Standard builds a standard suited card.
func Standard(suit Suit, rank uint8) Card {
	return Card{Kind: KindStandard, Suit: suit, Rank: rank}
}

// MahJong is the single Mah Jong card (rank-value 1).
func MahJong() Card { return Card{Kind: KindMahJong} }

// Dog is the single Dog card.
func Dog() Card { return Card{Kind: KindDog} }

// Phoenix is the single Phoenix card.
func Phoenix() Card { return Card{Kind: KindPhoenix} }

// Dragon is the single Dragon card (rank-value 16, above Ace).
func Dragon() Card { return Card{Kind: KindDragon} }

// Value returns the rank-ordering value of a card usable in straights and
// straight flushes: Mah Jong=1, standard=2..14, Dragon=16. Dog and Phoenix
// have no static value (Dog never participates in a sequence; Phoenix's
// value is computed contextually — see combo.go).
func (c Card) Value() uint8 {
	switch c.Kind {
	case KindMahJong:
		return mahJongValue
	case KindDragon:
		return dragonValue
	case KindStandard:
		return c.Rank
	default:
		return 0
	}
}

// CardPoints is the fixed scoring value of a single card: 5 (rank Five), 10
// (rank Ten or King), +25 (Dragon), -25 (Phoenix), else 0.
func (c Card) CardPoints() int {
	switch c.Kind {
	case KindDragon:
		return 25
	case KindPhoenix:
		return -25
	case KindStandard:
		switch c.Rank {
		case 5:
			return 5
		case 10, RankKing:
			return 10
		}
	}
	return 0
}

// SortValue is a total, UI-stable ordering key. No rule in this package
// consults it; it exists only so a presentation layer can render a hand in
// a consistent order.
func (c Card) SortValue() int {
	switch c.Kind {
	case KindDog:
		return -2
	case KindMahJong:
		return -1
	case KindPhoenix:
		return 0
	case KindDragon:
		return 1000
	default:
		return int(c.Suit)*100 + int(c.Rank)
	}
}

func (c Card) String() string {
	switch c.Kind {
	case KindMahJong:
		return "MahJong"
	case KindDog:
		return "Dog"
	case KindPhoenix:
		return "Phoenix"
	case KindDragon:
		return "Dragon"
	default:
		return suitLetter(c.Suit) + rankLabel(c.Rank)
	}
}

func suitLetter(s Suit) string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

func rankLabel(r uint8) string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return []string{"", "", "2", "3", "4", "5", "6", "7", "8", "9", "10"}[r]
	}
}
