// Package bio provides nucleotide and codon encoding, genetic codes,
// sequence comparison and FASTA input/output.
package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned for sequence data before the first FASTA
// header.
var ErrNoHeader = errors.New("sequence w/o prefix")

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences. E.g. a sequence alignment.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader. Sequences are
// converted to uppercase, spaces are removed.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: strings.TrimSpace(line[1:])}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, ErrNoHeader
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return seqs, scanner.Err()
}

// Length returns the alignment length, i.e. the length of the first
// sequence.
func (seqs Sequences) Length() int {
	if len(seqs) == 0 {
		return 0
	}
	return len(seqs[0].Sequence)
}

// CheckAlignment checks that all the sequences have the same length
// and consist of nucleotide symbols only.
func (seqs Sequences) CheckAlignment() error {
	l := seqs.Length()
	for _, seq := range seqs {
		if len(seq.Sequence) != l {
			return fmt.Errorf("%w: %q has %d nucleotides, expected %d",
				ErrLengthMismatch, seq.Name, len(seq.Sequence), l)
		}
		for i := 0; i < len(seq.Sequence); i++ {
			if !IsNucleotide(seq.Sequence[i]) {
				return fmt.Errorf("%w: %q at position %d of %q",
					ErrInvalidSymbol, seq.Sequence[i], i+1, seq.Name)
			}
		}
	}
	return nil
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() string {
	return ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() string {
	var b strings.Builder
	for _, seq := range seqs {
		b.WriteString(seq.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
