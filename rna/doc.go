// Package rna models RNA primary structure: the four-letter nucleotide
// alphabet, immutable sequences over it, and the base-pairing relation used
// by secondary-structure predictors.
//
// 🚀 What is in here?
//
//	• Base / Sequence   — symbols A, U, G, C and an immutable ordered list of them
//	• Parse             — normalize raw text (whitespace, case, DNA T→U) and validate
//	• ValidPair         — the canonical pairing relation: A–U, G–C and the G–U wobble
//	• PairKind          — classify a pair as Watson–Crick, wobble or non-pairing
//	• Random / NewRNG   — deterministic, seeded random sequence generation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rnafold/rna"
//
//	seq, err := rna.Parse("gggaaaucc")
//	if err != nil {
//	  // errors.Is(err, rna.ErrInvalidSymbol)
//	}
//	fmt.Println(seq, seq.Len())        // GGGAAAUCC 9
//	fmt.Println(rna.ValidPair(rna.G, rna.U)) // true
//
// Symbols outside the alphabet are representable (Sequence is a string type)
// but never pair; use Parse or Sequence.Validate to reject them early.
package rna
