package bio

import (
	"errors"
	"fmt"
)

// Nucleotide is a compact code for a nucleotide symbol: one of the
// four bases, an IUPAC ambiguity symbol or the gap.
type Nucleotide byte

// Nucleotide codes. Bases come first, then ambiguity symbols, the gap
// is the last code.
const (
	Adenine    Nucleotide = iota // A
	Thymine                      // T
	Guanine                      // G
	Cytosine                     // C
	Any                          // N
	Purine                       // R
	Pyrimidine                   // Y
	Strong                       // S
	Weak                         // W
	Keto                         // K
	Amino                        // M
	NotA                         // B
	NotC                         // D
	NotG                         // H
	NotT                         // V
	Gap                          // -

	// NNucleotide is the number of nucleotide codes.
	NNucleotide = int(Gap) + 1
)

// GapChar is the gap symbol used in alignments.
const GapChar = '-'

// ErrInvalidSymbol is returned for characters outside of the
// nucleotide alphabet.
var ErrInvalidSymbol = errors.New("invalid nucleotide symbol")

const noCode = 0xff

var (
	// symbols is indexed by Nucleotide.
	symbols = [NNucleotide]byte{'A', 'T', 'G', 'C', 'N', 'R', 'Y', 'S', 'W', 'K', 'M', 'B', 'D', 'H', 'V', GapChar}
	// codes is a dense reverse lookup, noCode marks unknown characters.
	codes [256]byte
)

func init() {
	for i := range codes {
		codes[i] = noCode
	}
	for n, c := range symbols {
		codes[c] = byte(n)
		if c >= 'A' && c <= 'Z' {
			codes[c+'a'-'A'] = byte(n)
		}
	}
	codes['U'] = byte(Thymine)
	codes['u'] = byte(Thymine)
}

// NucToInt converts a nucleotide character to its code. Lowercase
// letters are accepted and U is read as T.
func NucToInt(c byte) (Nucleotide, error) {
	n := codes[c]
	if n == noCode {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	return Nucleotide(n), nil
}

// IntToNuc converts a code produced by NucToInt back to an uppercase
// character. It panics for codes out of range.
func IntToNuc(n Nucleotide) byte {
	if int(n) >= NNucleotide {
		panic(fmt.Sprintf("bio: nucleotide code %d out of range", n))
	}
	return symbols[n]
}

// IsNucleotide tests if c is a recognized symbol.
func IsNucleotide(c byte) bool {
	return codes[c] != noCode
}

// NotAGap returns false only for the gap symbol.
func NotAGap(c byte) bool {
	return c != GapChar
}

// IsBase is true for A, C, G and T.
func (n Nucleotide) IsBase() bool {
	return n <= Cytosine
}

// IsAmbiguous is true for IUPAC ambiguity symbols.
func (n Nucleotide) IsAmbiguous() bool {
	return n >= Any && n < Gap
}

// IsGap is true for the gap.
func (n Nucleotide) IsGap() bool {
	return n == Gap
}

// IsPurine is true for A and G.
func (n Nucleotide) IsPurine() bool {
	return n == Adenine || n == Guanine
}

// IsPyrimidine is true for C and T.
func (n Nucleotide) IsPyrimidine() bool {
	return n == Cytosine || n == Thymine
}

func (n Nucleotide) String() string {
	if int(n) >= NNucleotide {
		return fmt.Sprintf("Nucleotide(%d)", n)
	}
	return string(symbols[n])
}
