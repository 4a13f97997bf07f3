package rna

// Kind classifies a base pair.
type Kind uint8

const (
	// NoPair marks two bases that cannot pair.
	NoPair Kind = iota

	// WatsonCrick marks the canonical A–U and G–C pairs.
	WatsonCrick

	// Wobble marks the G–U pair.
	Wobble
)

// String returns a short human-readable name.
func (k Kind) String() string {
	switch k {
	case WatsonCrick:
		return "watson-crick"
	case Wobble:
		return "wobble"
	default:
		return "none"
	}
}

// pairTable is the static Pair Validity Relation indexed by raw byte value.
// Both orientations are stored so lookups never depend on argument order.
var pairTable = func() (t [256][256]Kind) {
	t[A][U], t[U][A] = WatsonCrick, WatsonCrick
	t[G][C], t[C][G] = WatsonCrick, WatsonCrick
	t[G][U], t[U][G] = Wobble, Wobble
	return t
}()

// PairKind returns the kind of pair formed by a and b. Symbols outside the
// alphabet always yield NoPair.
//
// Complexity: O(1).
func PairKind(a, b Base) Kind { return pairTable[a][b] }

// ValidPair reports whether a and b may pair: A–U, G–C, G–U and their
// reverses. The relation is symmetric.
func ValidPair(a, b Base) bool { return pairTable[a][b] != NoPair }
