package codon

import (
	"errors"
	"strings"
	"testing"

	"github.com/orthologr/gestimator/bio"
)

var ali1 = bio.Sequences{
	{Name: "a", Sequence: "ATGTTA---CCCAAN"},
	{Name: "b", Sequence: "ATGTTGAAACCCAAA"},
	{Name: "c", Sequence: "ATGATAAAACC-AAA"},
}

func TestToCodonSequences(tst *testing.T) {
	cali, err := ToCodonSequences(ali1)
	if err != nil {
		tst.Fatal("Error:", err)
	}
	if cali.Length() != 5 {
		tst.Error("Expected 5 codons, got", cali.Length())
	}
	if cali[1].Codon(2) != "AAA" {
		tst.Error("Wrong codon:", cali[1].Codon(2))
	}
	if n := cali.NFixed(); n != 1 {
		tst.Error("Expected 1 fixed position, got", n)
	}
	if n := cali.NAmbiguous(); n != 1 {
		tst.Error("Expected 1 ambiguous position, got", n)
	}
	if n := cali.NGapped(); n != 2 {
		tst.Error("Expected 2 gapped positions, got", n)
	}
}

func TestToCodonSequencesErrors(tst *testing.T) {
	_, err := ToCodonSequences(bio.Sequences{{Name: "a", Sequence: "ATGA"}})
	if !errors.Is(err, ErrFrame) {
		tst.Error("Expected ErrFrame, got", err)
	}
	_, err = ToCodonSequences(bio.Sequences{{Name: "a", Sequence: "ATG"}, {Name: "b", Sequence: "ATGAAA"}})
	if !errors.Is(err, bio.ErrLengthMismatch) {
		tst.Error("Expected ErrLengthMismatch, got", err)
	}
}

func TestRemoveGapColumns(tst *testing.T) {
	cali, _ := ToCodonSequences(ali1)
	res, removed := cali.RemoveGapColumns()
	if removed != 2 {
		tst.Error("Expected 2 removed positions, got", removed)
	}
	if res.Length() != 3 {
		tst.Error("Expected 3 codons, got", res.Length())
	}
	if res[0].Sequence != "ATGTTAAAN" || res[2].Sequence != "ATGATAAAA" {
		tst.Error("Wrong sequences after gap removal:", res)
	}
	// the original alignment is not modified
	if cali.Length() != 5 {
		tst.Error("Original alignment was modified")
	}
}

func TestInternalStops(tst *testing.T) {
	cali, _ := ToCodonSequences(bio.Sequences{
		{Name: "a", Sequence: "ATGTAAGGGTGA"},
		{Name: "b", Sequence: "ATGCAAGGGTGA"},
	})
	stops := cali.InternalStops(bio.Standard)
	if stops[0] != 1 || stops[1] != 0 {
		tst.Error("Wrong number of internal stops:", stops)
	}
}

func TestNamesString(tst *testing.T) {
	cali, _ := ToCodonSequences(ali1)
	if names := strings.Join(cali.Names(), ","); names != "a,b,c" {
		tst.Error("Wrong names:", names)
	}
	if s := cali[0].String(); s != ">a\nATG TTA --- CCC AAN \n" {
		tst.Errorf("Wrong codon sequence output: %q", s)
	}
	s := cali.String()
	if strings.Count(s, ">") != 3 || strings.HasSuffix(s, "\n") {
		tst.Errorf("Wrong codon alignment output: %q", s)
	}
}
