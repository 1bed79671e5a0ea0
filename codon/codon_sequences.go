// Package codon provides codon alignments.
package codon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orthologr/gestimator/bio"
)

// ErrFrame is returned when the alignment length doesn't divide by 3.
var ErrFrame = errors.New("sequence length doesn't divide by 3")

// Sequence is an in-frame nucleotide sequence accessed by codons.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences is a codon alignment.
type Sequences []Sequence

// Length returns the number of codons.
func (seq Sequence) Length() int {
	return len(seq.Sequence) / bio.CodonLength
}

// Codon returns codon number i.
func (seq Sequence) Codon(i int) string {
	return seq.Sequence[i*bio.CodonLength : (i+1)*bio.CodonLength]
}

func (seq Sequence) String() (s string) {
	var b strings.Builder
	for i := 0; i < seq.Length(); i++ {
		b.WriteString(seq.Codon(i))
		b.WriteByte(' ')
	}
	return ">" + seq.Name + "\n" + bio.Wrap(b.String(), 80)
}

// ToCodonSequences converts a nucleotide alignment to a codon
// alignment. All the sequences should have the same length divisible
// by 3 and contain nucleotide symbols only.
func ToCodonSequences(seqs bio.Sequences) (cs Sequences, err error) {
	if err := seqs.CheckAlignment(); err != nil {
		return nil, err
	}
	if seqs.Length()%bio.CodonLength != 0 {
		return nil, fmt.Errorf("%w: %d nucleotides", ErrFrame, seqs.Length())
	}
	cs = make(Sequences, 0, len(seqs))
	for _, seq := range seqs {
		cs = append(cs, Sequence{Name: seq.Name, Sequence: seq.Sequence})
	}
	return
}

// Length returns the number of codons in the alignment.
func (seqs Sequences) Length() int {
	if len(seqs) == 0 {
		return 0
	}
	return seqs[0].Length()
}

func (seqs Sequences) String() (s string) {
	var b strings.Builder
	for _, seq := range seqs {
		b.WriteString(seq.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Names returns sequence names in the alignment order.
func (seqs Sequences) Names() []string {
	names := make([]string, len(seqs))
	for i, seq := range seqs {
		names[i] = seq.Name
	}
	return names
}

// column returns true for positions where test is true for a codon of
// at least one sequence.
func (seqs Sequences) column(test func(string) bool) (res []bool) {
	res = make([]bool, seqs.Length())
	for pos := range res {
		for _, seq := range seqs {
			if test(seq.Codon(pos)) {
				res[pos] = true
				break
			}
		}
	}
	return
}

func count(b []bool) (n int) {
	for _, v := range b {
		if v {
			n++
		}
	}
	return
}

// Fixed returns true for absolutely conserved positions.
func (seqs Sequences) Fixed() (fixed []bool) {
	fixed = make([]bool, seqs.Length())
	for pos := range fixed {
		isFixed := true
		for i := 1; i < len(seqs); i++ {
			if seqs[i].Codon(pos) != seqs[0].Codon(pos) {
				isFixed = false
				break
			}
		}
		fixed[pos] = isFixed
	}
	return
}

// NFixed calculates number of constant positions in the alignment.
func (seqs Sequences) NFixed() int {
	return count(seqs.Fixed())
}

// NAmbiguous returns the number of positions with at least one codon
// containing an ambiguity symbol.
func (seqs Sequences) NAmbiguous() int {
	return count(seqs.column(bio.AmbiguousNucleotides))
}

// Gapped returns true for positions with a gap in at least one
// sequence.
func (seqs Sequences) Gapped() []bool {
	return seqs.column(bio.HasGap)
}

// NGapped returns the number of positions with a gap in at least one
// sequence.
func (seqs Sequences) NGapped() int {
	return count(seqs.Gapped())
}

// RemoveGapColumns returns a new alignment without the positions
// which have a gap in any of the sequences, and the number of removed
// positions.
func (seqs Sequences) RemoveGapColumns() (Sequences, int) {
	gapped := seqs.Gapped()
	removed := count(gapped)
	res := make(Sequences, len(seqs))
	for i, seq := range seqs {
		var b strings.Builder
		b.Grow(len(seq.Sequence) - removed*bio.CodonLength)
		for pos, gap := range gapped {
			if !gap {
				b.WriteString(seq.Codon(pos))
			}
		}
		res[i] = Sequence{Name: seq.Name, Sequence: b.String()}
	}
	return res, removed
}

// InternalStops returns the number of internal stop codons per
// sequence under the genetic code.
func (seqs Sequences) InternalStops(gcode *bio.GeneticCode) (stops []int) {
	stops = make([]int, len(seqs))
	for i, seq := range seqs {
		_, stops[i], _ = gcode.TranslateSequence(seq.Sequence)
	}
	return
}
