// Package pairwise counts nucleotide and codon differences between two
// sequences of a codon alignment.
package pairwise

import (
	"fmt"

	"github.com/orthologr/gestimator/bio"
	"github.com/orthologr/gestimator/codon"
)

// Class is a classification of a codon alignment column.
type Class int

const (
	// Excluded columns have a gap or a malformed codon and are not
	// counted.
	Excluded Class = iota
	// Identical codons.
	Identical
	// Synonymous codons differ but encode the same amino acid.
	Synonymous
	// Nonsynonymous codons encode different amino acids.
	Nonsynonymous
	// Undetermined codons differ, but at least one of them can't be
	// translated.
	Undetermined
)

func (c Class) String() string {
	switch c {
	case Identical:
		return "identical"
	case Synonymous:
		return "synonymous"
	case Nonsynonymous:
		return "nonsynonymous"
	case Undetermined:
		return "undetermined"
	}
	return "excluded"
}

// Result holds counts for a pair of sequences.
type Result struct {
	Query   string `json:"query"`
	Subject string `json:"subject"`
	// Codons is the number of compared codons.
	Codons int `json:"codons"`
	// Sites is the number of compared nucleotide sites.
	Sites int `json:"sites"`
	// Differences is the number of nucleotide differences.
	Differences   int `json:"differences"`
	Synonymous    int `json:"synonymous"`
	Nonsynonymous int `json:"nonsynonymous"`
	Undetermined  int `json:"undetermined"`
	Transitions   int `json:"transitions"`
	Transversions int `json:"transversions"`
	// Excluded is the number of codon columns skipped because of gaps.
	Excluded int `json:"excluded"`
}

// PDistance returns the proportion of differing sites.
func (r Result) PDistance() float64 {
	if r.Sites == 0 {
		return 0
	}
	return float64(r.Differences) / float64(r.Sites)
}

// Swap returns the result with query and subject exchanged. All the
// counts are symmetric.
func (r Result) Swap() Result {
	r.Query, r.Subject = r.Subject, r.Query
	return r
}

func (r Result) String() string {
	return fmt.Sprintf("%s vs %s: codons=%d, diffs=%d, S=%d, N=%d, U=%d, Ts=%d, Tv=%d",
		r.Query, r.Subject, r.Codons, r.Differences,
		r.Synonymous, r.Nonsynonymous, r.Undetermined,
		r.Transitions, r.Transversions)
}

// Classify classifies a pair of aligned codons.
func Classify(c1, c2 string, gcode *bio.GeneticCode) (Class, error) {
	if !bio.CodonPrecondition(c1) || !bio.CodonPrecondition(c2) ||
		bio.HasGap(c1) || bio.HasGap(c2) {
		return Excluded, nil
	}
	diff, err := bio.Different(c1, c2, false, true)
	if err != nil {
		return Excluded, err
	}
	if !diff {
		return Identical, nil
	}
	aa1, err := gcode.Translate(c1)
	if err != nil {
		return Excluded, err
	}
	aa2, err := gcode.Translate(c2)
	if err != nil {
		return Excluded, err
	}
	switch {
	case aa1 == bio.Undetermined || aa2 == bio.Undetermined:
		return Undetermined, nil
	case aa1 == aa2:
		return Synonymous, nil
	}
	return Nonsynonymous, nil
}

// Compare counts differences between two sequences of a codon
// alignment. Columns with a gap in either sequence are excluded.
func Compare(a, b codon.Sequence, gcode *bio.GeneticCode) (r Result, err error) {
	r.Query, r.Subject = a.Name, b.Name
	if len(a.Sequence) != len(b.Sequence) {
		return r, fmt.Errorf("%w: %q and %q", bio.ErrLengthMismatch, a.Name, b.Name)
	}
	for pos := 0; pos < a.Length(); pos++ {
		c1, c2 := a.Codon(pos), b.Codon(pos)
		class, err := Classify(c1, c2, gcode)
		if err != nil {
			return r, err
		}
		switch class {
		case Excluded:
			r.Excluded++
			continue
		case Synonymous:
			r.Synonymous++
		case Nonsynonymous:
			r.Nonsynonymous++
		case Undetermined:
			r.Undetermined++
		}
		r.Codons++
		r.Sites += bio.CodonLength
		if class == Identical {
			continue
		}
		d, err := bio.NumDiffs(c1, c2, true, true)
		if err != nil {
			return r, err
		}
		r.Differences += d
		r.countTsTv(c1, c2)
	}
	return r, nil
}

// countTsTv adds transitions and transversions between two codons.
func (r *Result) countTsTv(c1, c2 string) {
	for i := 0; i < bio.CodonLength; i++ {
		n1, err1 := bio.NucToInt(c1[i])
		n2, err2 := bio.NucToInt(c2[i])
		if err1 != nil || err2 != nil {
			continue
		}
		switch bio.TsTv(n1, n2) {
		case bio.Ts:
			r.Transitions++
		case bio.Tv:
			r.Transversions++
		}
	}
}
