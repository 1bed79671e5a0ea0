package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/orthologr/gestimator/bio"
	"github.com/orthologr/gestimator/codon"
)

// load reads the alignment and removes gap columns if requested.
func (e *Estimator) load() error {
	fastaFile, err := os.Open(e.cfg.Input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer fastaFile.Close()

	info, err := fastaFile.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrFile, e.cfg.Input)
	}

	ali, err := bio.ParseFasta(fastaFile)
	switch {
	case errors.Is(err, bio.ErrNoHeader) || errors.Is(err, bufio.ErrTooLong):
		return fmt.Errorf("%w: %v", ErrFormat, err)
	case err != nil:
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	if len(ali) == 0 {
		return fmt.Errorf("%w: no sequences in %s", ErrFile, e.cfg.Input)
	}

	cali, err := codon.ToCodonSequences(ali)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}

	names := make(map[string]bool, len(cali))
	for _, name := range cali.Names() {
		if names[name] {
			return fmt.Errorf("%w: duplicate sequence name %q", ErrFormat, name)
		}
		names[name] = true
	}
	if cali.Length() == 0 {
		return fmt.Errorf("%w: zero length alignment", ErrFormat)
	}
	log.Infof("Read alignment of %d sequences, %d codons, %d fixed positions, %d ambiguous positions, %d gapped positions",
		len(cali), cali.Length(), cali.NFixed(), cali.NAmbiguous(), cali.NGapped())
	if len(cali) < 2 {
		log.Warning("Alignment has a single sequence, nothing to compare")
	}

	for i, n := range cali.InternalStops(e.gcode) {
		if n > 0 {
			log.Warningf("%s has %d internal stop codon(s)", cali[i].Name, n)
		}
	}

	if e.cfg.RemoveAllGaps {
		cali, e.removed = cali.RemoveGapColumns()
		log.Infof("Removed %d gapped positions, %d codons left", e.removed, cali.Length())
	}
	log.Debugf("Codon alignment:\n%v", cali)

	e.ali = cali
	return nil
}
