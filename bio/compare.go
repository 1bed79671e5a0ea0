package bio

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when sequences of different lengths
// are compared.
var ErrLengthMismatch = errors.New("sequences have different lengths")

// Mutation is a class of a single nucleotide substitution.
type Mutation int

const (
	// Unknown is used for identical nucleotides, gaps and ambiguity
	// symbols.
	Unknown Mutation = iota
	// Ts is a transition (A<->G, C<->T).
	Ts
	// Tv is a transversion (purine<->pyrimidine).
	Tv
)

func (m Mutation) String() string {
	switch m {
	case Ts:
		return "Ts"
	case Tv:
		return "Tv"
	}
	return "Unknown"
}

// TsTv classifies the substitution between i and j.
func TsTv(i, j Nucleotide) Mutation {
	if i == j || !i.IsBase() || !j.IsBase() {
		return Unknown
	}
	if (i.IsPurine() && j.IsPurine()) || (i.IsPyrimidine() && j.IsPyrimidine()) {
		return Ts
	}
	return Tv
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// missing tests if c is missing data. For nucleic acids these are gaps
// and ambiguity symbols, for proteins X, gap and '?'.
func missing(c byte, nucleicAcid bool) bool {
	if nucleicAcid {
		n := codes[c]
		return n != noCode && !Nucleotide(n).IsBase()
	}
	switch upper(c) {
	case 'X', GapChar, '?':
		return true
	}
	return false
}

func siteDiffers(c1, c2 byte, skipMissing, nucleicAcid bool) bool {
	if skipMissing && (missing(c1, nucleicAcid) || missing(c2, nucleicAcid)) {
		return false
	}
	if nucleicAcid {
		n1, n2 := codes[c1], codes[c2]
		if n1 != noCode && n2 != noCode {
			return n1 != n2
		}
	}
	return upper(c1) != upper(c2)
}

// NumDiffs counts positions at which seq1 and seq2 differ. Comparison
// is case-insensitive. If skipMissing is set, positions with missing
// data in either sequence are ignored. nucleicAcid selects nucleotide
// rather than amino acid symbols.
func NumDiffs(seq1, seq2 string, skipMissing, nucleicAcid bool) (int, error) {
	if len(seq1) != len(seq2) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(seq1), len(seq2))
	}
	n := 0
	for i := 0; i < len(seq1); i++ {
		if siteDiffers(seq1[i], seq2[i], skipMissing, nucleicAcid) {
			n++
		}
	}
	return n, nil
}

// Different tests if seq1 and seq2 differ at any position, see NumDiffs.
func Different(seq1, seq2 string, skipMissing, nucleicAcid bool) (bool, error) {
	if len(seq1) != len(seq2) {
		return false, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(seq1), len(seq2))
	}
	for i := 0; i < len(seq1); i++ {
		if siteDiffers(seq1[i], seq2[i], skipMissing, nucleicAcid) {
			return true, nil
		}
	}
	return false, nil
}
