package checkpoint

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"

	"github.com/orthologr/gestimator/pairwise"
)

func init() {
	logging.SetLevel(logging.ERROR, "checkpoint")
}

func TestStore(tst *testing.T) {
	fn := filepath.Join(tst.TempDir(), "cp.db")
	s, err := Open(fn, Digest("ali1"))
	if err != nil {
		tst.Fatal("Error opening:", err)
	}

	r := pairwise.Result{Query: "b", Subject: "a", Codons: 10, Sites: 30, Differences: 2, Synonymous: 1, Nonsynonymous: 1}
	if err := s.Put(r); err != nil {
		tst.Error("Error saving:", err)
	}

	got, err := s.Get("b", "a")
	if err != nil || got == nil {
		tst.Fatal("Expected stored result, got", got, err)
	}
	if *got != r {
		tst.Error("Wrong result:", *got)
	}

	got, _ = s.Get("a", "b")
	if got == nil || *got != r.Swap() {
		tst.Error("Wrong swapped result:", got)
	}

	got, err = s.Get("a", "c")
	if err != nil || got != nil {
		tst.Error("Expected no result, got", got, err)
	}
	if err := s.Close(); err != nil {
		tst.Error("Error closing:", err)
	}

	// other analyses don't see the result
	s, err = Open(fn, Digest("ali2"))
	if err != nil {
		tst.Fatal("Error reopening:", err)
	}
	defer s.Close()
	got, _ = s.Get("a", "b")
	if got != nil {
		tst.Error("Result leaked into another bucket:", got)
	}
}

func TestNilStore(tst *testing.T) {
	var s *Store
	if r, err := s.Get("a", "b"); r != nil || err != nil {
		tst.Error("Nil store should return nothing")
	}
	if err := s.Put(pairwise.Result{}); err != nil {
		tst.Error("Nil store should ignore Put:", err)
	}
	if err := s.Close(); err != nil {
		tst.Error("Nil store should ignore Close:", err)
	}
}

func TestDigest(tst *testing.T) {
	if bytes.Equal(Digest("ab", "c"), Digest("a", "bc")) {
		tst.Error("Digest should separate parts")
	}
	if !bytes.Equal(Digest("a", "b"), Digest("a", "b")) {
		tst.Error("Digest is not deterministic")
	}
}
