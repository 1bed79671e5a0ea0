package bio

import "errors"

// CodonLength is the number of nucleotides in a codon.
const CodonLength = 3

// ErrMalformedCodon is returned when a codon string doesn't pass
// CodonPrecondition.
var ErrMalformedCodon = errors.New("malformed codon")

// CodonPrecondition tests if codon has three characters and every
// character is a nucleotide symbol (gaps and ambiguity symbols
// included). It should be checked before translation.
func CodonPrecondition(codon string) bool {
	if len(codon) != CodonLength {
		return false
	}
	for i := 0; i < CodonLength; i++ {
		if !IsNucleotide(codon[i]) {
			return false
		}
	}
	return true
}

// AmbiguousNucleotides tests if codon contains an ambiguity
// symbol. Gaps are not ambiguity symbols.
func AmbiguousNucleotides(codon string) bool {
	for i := 0; i < len(codon); i++ {
		n := codes[codon[i]]
		if n != noCode && Nucleotide(n).IsAmbiguous() {
			return true
		}
	}
	return false
}

// HasGap tests if codon contains a gap.
func HasGap(codon string) bool {
	for i := 0; i < len(codon); i++ {
		if !NotAGap(codon[i]) {
			return true
		}
	}
	return false
}

// codonIndex returns the table index of a codon made of bases only,
// ok is false otherwise.
func codonIndex(codon string) (idx int, ok bool) {
	for i := 0; i < CodonLength; i++ {
		n := codes[codon[i]]
		if n == noCode || !Nucleotide(n).IsBase() {
			return 0, false
		}
		idx = idx*4 + int(n)
	}
	return idx, true
}
