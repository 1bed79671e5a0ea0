package bio

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// StopCodon is the translation of stop codons.
	StopCodon = '*'
	// Undetermined is the translation of codons containing ambiguity
	// symbols or gaps.
	Undetermined = 'X'
	// NCodon is the number of codons made of unambiguous bases.
	NCodon = 64
)

// ncbiOrder maps base codes to the TCAG order used by NCBI tables.
var ncbiOrder = [4]int{Adenine: 2, Thymine: 0, Guanine: 3, Cytosine: 1}

// GeneticCode is a translation table. It is immutable after creation.
type GeneticCode struct {
	// ID is the NCBI genetic code id.
	ID int
	// Name is the NCBI name of the genetic code.
	Name string
	// table is indexed by codonIndex.
	table [NCodon]byte
	// NStop is the number of stop codons.
	NStop int
}

// newGeneticCode creates a genetic code from an NCBI amino acid
// string (ncbieaa, codons in TCAG order).
func newGeneticCode(id int, name, ncbieaa string) *GeneticCode {
	if len(ncbieaa) != NCodon {
		panic(fmt.Sprintf("bio: genetic code %d has %d codons", id, len(ncbieaa)))
	}
	gc := &GeneticCode{ID: id, Name: name}
	for b1 := 0; b1 < 4; b1++ {
		for b2 := 0; b2 < 4; b2++ {
			for b3 := 0; b3 < 4; b3++ {
				ncbi := ncbiOrder[b1]*16 + ncbiOrder[b2]*4 + ncbiOrder[b3]
				aa := ncbieaa[ncbi]
				gc.table[b1*16+b2*4+b3] = aa
				if aa == StopCodon {
					gc.NStop++
				}
			}
		}
	}
	return gc
}

// Translate translates a single codon. Codons with ambiguity symbols
// or gaps are translated to Undetermined. ErrMalformedCodon is
// returned if the codon fails CodonPrecondition.
func (gc *GeneticCode) Translate(codon string) (byte, error) {
	if !CodonPrecondition(codon) {
		return Undetermined, fmt.Errorf("%w: %q", ErrMalformedCodon, codon)
	}
	idx, ok := codonIndex(codon)
	if !ok {
		return Undetermined, nil
	}
	return gc.table[idx], nil
}

// TranslateName is like Translate but returns the amino acid name.
func (gc *GeneticCode) TranslateName(codon string) (string, error) {
	aa, err := gc.Translate(codon)
	if err != nil {
		return "", err
	}
	return AminoAcidName(aa), nil
}

// TranslateSequence translates an in-frame nucleotide sequence. The
// second value is the number of stop codons before the last codon.
func (gc *GeneticCode) TranslateSequence(nseq string) (string, int, error) {
	var buffer bytes.Buffer

	if len(nseq)%CodonLength != 0 {
		return "", 0, errors.New("sequence length doesn't divide by 3")
	}

	internal := 0
	for i := 0; i < len(nseq); i += CodonLength {
		aa, err := gc.Translate(nseq[i : i+CodonLength])
		if err != nil {
			return buffer.String(), internal, err
		}
		if aa == StopCodon && i+CodonLength < len(nseq) {
			internal++
		}
		buffer.WriteByte(aa)
	}
	return buffer.String(), internal, nil
}

func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GeneticCode: %d, %q>", gc.ID, gc.Name)
}

// Universal translates a codon using the standard genetic code.
func Universal(codon string) (byte, error) {
	return Standard.Translate(codon)
}

// TranslateCodon translates a codon using the standard genetic code
// and returns the amino acid name, "Stop" or "Undetermined".
func TranslateCodon(codon string) (string, error) {
	return Standard.TranslateName(codon)
}
