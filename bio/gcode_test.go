package bio

import (
	"errors"
	"strings"
	"testing"
)

// allCodons returns all 64 unambiguous codons.
func allCodons() (codons []string) {
	const alphabet = "TCAG"
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				codons = append(codons, string([]rune{a, b, c}))
			}
		}
	}
	return
}

func TestUniversalUnambiguous(tst *testing.T) {
	const aas = "ACDEFGHIKLMNPQRSTVWY*"
	nstop := 0
	for _, codon := range allCodons() {
		if !CodonPrecondition(codon) {
			tst.Error("Precondition failed for", codon)
		}
		aa, err := Universal(codon)
		if err != nil {
			tst.Error("Error translating", codon, err)
		}
		if !strings.ContainsRune(aas, rune(aa)) {
			tst.Errorf("Unexpected translation of %s: %c", codon, aa)
		}
		if aa == StopCodon {
			nstop++
		}
	}
	if nstop != 3 {
		tst.Error("Expected 3 stop codons, got", nstop)
	}
}

func TestUniversalKnown(tst *testing.T) {
	known := map[string]byte{
		"ATG": 'M', "TGG": 'W', "TAA": '*', "TAG": '*', "TGA": '*',
		"TTA": 'L', "TTG": 'L', "CTG": 'L', "ATA": 'I', "AGA": 'R',
		"GGC": 'G', "gcu": 'A',
	}
	for codon, exp := range known {
		aa, err := Universal(codon)
		if err != nil || aa != exp {
			tst.Errorf("%s: expected %c, got %c (%v)", codon, exp, aa, err)
		}
	}
}

func TestUniversalAmbiguous(tst *testing.T) {
	for _, codon := range []string{"ATN", "RTG", "YYY", "A-G", "---"} {
		aa, err := Universal(codon)
		if err != nil {
			tst.Error("Error translating", codon, err)
		}
		if aa != Undetermined {
			tst.Errorf("%s: expected undetermined, got %c", codon, aa)
		}
	}
	for _, codon := range []string{"ATN", "RTG", "YYY"} {
		if !AmbiguousNucleotides(codon) {
			tst.Error("Expected ambiguous:", codon)
		}
	}
	if AmbiguousNucleotides("A-G") || AmbiguousNucleotides("ATG") {
		tst.Error("Gaps and bases are not ambiguity symbols")
	}
}

func TestMalformedCodon(tst *testing.T) {
	for _, codon := range []string{"", "AT", "ATGA", "AXG", "A G"} {
		if CodonPrecondition(codon) {
			tst.Error("Precondition should fail for", codon)
		}
		_, err := Universal(codon)
		if !errors.Is(err, ErrMalformedCodon) {
			tst.Errorf("Expected ErrMalformedCodon for %q, got %v", codon, err)
		}
	}
}

func TestTranslateCodon(tst *testing.T) {
	cases := map[string]string{
		"ATG": "Methionine",
		"TTA": "Leucine",
		"ATA": "Isoleucine",
		"TGA": "Stop",
		"ANG": "Undetermined",
	}
	for codon, exp := range cases {
		name, err := TranslateCodon(codon)
		if err != nil || name != exp {
			tst.Errorf("%s: expected %s, got %s (%v)", codon, exp, name, err)
		}
	}
}

func TestGeneticCodes(tst *testing.T) {
	if Standard.ID != 1 {
		tst.Error("Standard code should have id 1")
	}
	mito := GeneticCodes[2]
	for codon, exp := range map[string]byte{"TGA": 'W', "ATA": 'M', "AGA": '*', "AGG": '*'} {
		aa, _ := mito.Translate(codon)
		if aa != exp {
			tst.Errorf("Vertebrate mitochondrial %s: expected %c, got %c", codon, exp, aa)
		}
	}
	if mito.NStop != 4 {
		tst.Error("Expected 4 stop codons in vertebrate mitochondrial code, got", mito.NStop)
	}
	for id, gc := range GeneticCodes {
		if gc.ID != id {
			tst.Errorf("Genetic code %d has id %d", id, gc.ID)
		}
	}
}

func TestTranslateSequence(tst *testing.T) {
	prot, stops, err := Standard.TranslateSequence("ATGTAAGGNTAG")
	if err != nil {
		tst.Error("Error translating:", err)
	}
	if prot != "M*X*" || stops != 1 {
		tst.Errorf("Expected M*X* with 1 internal stop, got %s, %d", prot, stops)
	}
	if _, _, err := Standard.TranslateSequence("ATGT"); err == nil {
		tst.Error("Expected error for length not divisible by 3")
	}
}
