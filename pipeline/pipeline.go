// Package pipeline implements gestimator: it reads a codon alignment,
// compares every query sequence to a bounded number of partners and
// writes a table of pairwise results.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/op/go-logging"

	"github.com/orthologr/gestimator/bio"
	"github.com/orthologr/gestimator/checkpoint"
	"github.com/orthologr/gestimator/codon"
	"github.com/orthologr/gestimator/output"
	"github.com/orthologr/gestimator/pairwise"
)

var log = logging.MustGetLogger("pipeline")

var (
	// ErrFile is returned if a file can't be opened or created, or the
	// input file is empty.
	ErrFile = errors.New("file error")
	// ErrFormat is returned for structurally invalid alignments.
	ErrFormat = errors.New("alignment format error")
	// ErrMaxHits is returned if the maximum number of hits is less
	// than one.
	ErrMaxHits = errors.New("maximum number of hits should be at least 1")
)

// Partner selection modes.
const (
	// SelectOrder takes partners in the alignment order.
	SelectOrder = "order"
	// SelectBest takes partners with the smallest p-distance.
	SelectBest = "best"
)

// Config stores gestimator settings.
type Config struct {
	// Input is the alignment file (FASTA).
	Input string
	// Output is the results file, derived from Input if empty.
	Output string
	// Format is the output format (see output.Formats).
	Format string
	// MaxHits is the maximum number of partners per query.
	MaxHits int
	// Verbose reports every pair at the notice level.
	Verbose bool
	// RemoveAllGaps removes codon columns with a gap in any sequence
	// before comparison.
	RemoveAllGaps bool
	// Selection is SelectOrder or SelectBest.
	Selection string
	// GeneticCode is the NCBI genetic code id.
	GeneticCode int
	// Threads is the number of goroutines computing pairs.
	Threads int
	// Checkpoint is a bolt database file for storing computed pairs.
	Checkpoint string
}

// NewConfig returns a configuration with the default settings.
func NewConfig(input string) Config {
	return Config{
		Input:       input,
		Format:      output.DefaultFormat,
		MaxHits:     3,
		Selection:   SelectOrder,
		GeneticCode: 1,
	}
}

// DefaultOutput derives the output file name from the input file
// name: the extension is replaced by ".gestimator" and the format
// extension.
func DefaultOutput(input, format string) string {
	ext, err := output.Extension(format)
	if err != nil {
		ext = "." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".gestimator" + ext
}

// Estimator runs the pipeline. It is not safe for concurrent use.
type Estimator struct {
	cfg   Config
	gcode *bio.GeneticCode
	state State

	ali     codon.Sequences
	removed int
	results []pairwise.Result
}

// New checks the configuration and creates a new Estimator.
func New(cfg Config) (*Estimator, error) {
	if cfg.MaxHits < 1 {
		return nil, fmt.Errorf("%w: %d", ErrMaxHits, cfg.MaxHits)
	}
	if cfg.Format == "" {
		cfg.Format = output.DefaultFormat
	}
	if _, err := output.Extension(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Selection == "" {
		cfg.Selection = SelectOrder
	}
	if cfg.Selection != SelectOrder && cfg.Selection != SelectBest {
		return nil, fmt.Errorf("unknown selection mode: %s", cfg.Selection)
	}
	if cfg.GeneticCode == 0 {
		cfg.GeneticCode = 1
	}
	gcode, ok := bio.GeneticCodes[cfg.GeneticCode]
	if !ok {
		return nil, fmt.Errorf("couldn't load genetic code with id=%d", cfg.GeneticCode)
	}
	if cfg.Threads < 1 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput(cfg.Input, cfg.Format)
	}
	return &Estimator{cfg: cfg, gcode: gcode}, nil
}

// Gestimator runs the pipeline with the default settings. If fileOut
// is empty, the output file name is derived from file.
func Gestimator(file, fileOut string, maxHits int, verbose, removeAllGaps bool) error {
	cfg := NewConfig(file)
	cfg.Output = fileOut
	cfg.MaxHits = maxHits
	cfg.Verbose = verbose
	cfg.RemoveAllGaps = removeAllGaps
	e, err := New(cfg)
	if err != nil {
		return err
	}
	return e.Run(context.Background())
}

// Config returns the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// State returns the current state.
func (e *Estimator) State() State {
	return e.state
}

// Alignment returns the codon alignment used for comparison (after gap
// removal).
func (e *Estimator) Alignment() codon.Sequences {
	return e.ali
}

// Removed returns the number of codon columns removed because of gaps.
func (e *Estimator) Removed() int {
	return e.removed
}

// Results returns the results in the output order.
func (e *Estimator) Results() []pairwise.Result {
	return e.results
}

// Run loads the alignment, computes the pairs and writes the
// output. An estimator can be run only once.
func (e *Estimator) Run(ctx context.Context) (err error) {
	if e.state != Idle {
		return fmt.Errorf("estimator is %v", e.state)
	}
	defer func() {
		if err != nil {
			log.Debugf("Failed in state %v", e.state)
			e.setState(Failed)
		}
	}()

	e.setState(Loading)
	if err = e.load(); err != nil {
		return err
	}

	e.setState(Comparing)
	var store *checkpoint.Store
	if e.cfg.Checkpoint != "" {
		store, err = checkpoint.Open(e.cfg.Checkpoint, e.digest())
		if err != nil {
			return fmt.Errorf("%w: checkpoint %s: %v", ErrFile, e.cfg.Checkpoint, err)
		}
		defer store.Close()
	}
	if err = e.compare(ctx, store); err != nil {
		return err
	}

	e.setState(Writing)
	if err = output.Write(e.cfg.Format, e.cfg.Output, e.results); err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	log.Infof("Wrote %d results to %s", len(e.results), e.cfg.Output)

	e.setState(Done)
	return nil
}

func (e *Estimator) setState(s State) {
	log.Debugf("State: %v -> %v", e.state, s)
	e.state = s
}

// digest identifies the alignment and the settings influencing pair
// results.
func (e *Estimator) digest() []byte {
	parts := make([]string, 0, 2*len(e.ali)+1)
	parts = append(parts, fmt.Sprintf("gcode=%d", e.gcode.ID))
	for _, seq := range e.ali {
		parts = append(parts, seq.Name, seq.Sequence)
	}
	return checkpoint.Digest(parts...)
}
