/*

Gestimator compares aligned coding sequences pairwise. For every query
sequence it selects a bounded number of partners and counts nucleotide
differences, synonymous and nonsynonymous codon differences, transitions
and transversions.

The basic usage looks like this:

	gestimator alignment.fst

, this will write alignment.gestimator.tsv with three partners per
query. You can change the number of partners, the partner selection and
the output format:

	gestimator --maxhits 5 --select best --format sqlite alignment.fst

Every option can also be set with a GESTIMATOR_* environment variable
or in a .env file in the working directory.

To see all the options run:

	gestimator -h

*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/orthologr/gestimator/bio"
	"github.com/orthologr/gestimator/output"
	"github.com/orthologr/gestimator/pipeline"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("gestimator")
var formatter = logging.MustStringFormatter(`%{message}`)

// loggers are the package loggers controlled by --loglevel.
var loggers = []string{"gestimator", "pipeline", "checkpoint", "output"}

// command-line options
var (
	// application
	app = kingpin.New("gestimator", "pairwise codon sequence comparison").Version(version)

	// input
	alignmentFileName = app.Arg("alignment", "codon sequence alignment (FASTA)").Required().Envar("GESTIMATOR_ALIGNMENT").ExistingFile()

	// comparison parameters
	maxHits = app.Flag("maxhits", "maximum number of partners per query sequence").
		Default("3").Envar("GESTIMATOR_MAXHITS").Int()
	selection = app.Flag("select", "partner selection "+
		"(order: first sequences in the alignment order, "+
		"best: sequences with the smallest p-distance)").
		Default(pipeline.SelectOrder).Envar("GESTIMATOR_SELECT").
		Enum(pipeline.SelectOrder, pipeline.SelectBest)
	removeAllGaps = app.Flag("remove-all-gaps", "remove codon positions with a gap in any sequence").
		Envar("GESTIMATOR_REMOVE_ALL_GAPS").Bool()
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").
		Default("1").Envar("GESTIMATOR_GCODE").Int()

	// technical
	nThreads       = app.Flag("nt", "number of threads to use").Envar("GESTIMATOR_NT").Int()
	checkpointFile = app.Flag("checkpoint", "store computed pairs in a database and reuse them").
		Envar("GESTIMATOR_CHECKPOINT").String()

	// input/output
	outF   = app.Flag("out", "write results to a file (by default derived from the alignment file name)").Envar("GESTIMATOR_OUT").String()
	format = app.Flag("format", "output format").
		Default(output.DefaultFormat).Envar("GESTIMATOR_FORMAT").
		Enum(output.Formats()...)
	verbose  = app.Flag("verbose", "report every compared pair").Envar("GESTIMATOR_VERBOSE").Bool()
	outLogF  = app.Flag("log", "write log to a file").Envar("GESTIMATOR_LOG").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").Envar("GESTIMATOR_LOGLEVEL").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json summary to a file").Envar("GESTIMATOR_JSON").String()
)

// run executes the pipeline and fills the summary.
func run(ctx context.Context) (summary *RunSummary, err error) {
	startTime := time.Now()
	summary = &RunSummary{}

	cfg := pipeline.NewConfig(*alignmentFileName)
	cfg.Output = *outF
	cfg.Format = *format
	cfg.MaxHits = *maxHits
	cfg.Selection = *selection
	cfg.RemoveAllGaps = *removeAllGaps
	cfg.GeneticCode = *gcodeID
	cfg.Verbose = *verbose
	cfg.Threads = runtime.GOMAXPROCS(0)
	cfg.Checkpoint = *checkpointFile

	if gcode, ok := bio.GeneticCodes[cfg.GeneticCode]; ok {
		log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)
	}

	e, err := pipeline.New(cfg)
	if err != nil {
		return summary, err
	}
	err = e.Run(ctx)
	summary.fill(e)
	if err != nil {
		return summary, err
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()
	return summary, nil
}

// setupLogging sets the backend, the format and the level for all the
// package loggers.
func setupLogging() (closer func(), err error) {
	logging.SetFormatter(formatter)

	closer = func() {}
	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return closer, fmt.Errorf("error creating log file: %v", err)
		}
		closer = func() { f.Close() }
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		return closer, err
	}
	for _, module := range loggers {
		logging.SetLevel(level, module)
	}
	return closer, nil
}

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error reading .env:", err)
	}
	kingpin.MustParse(app.Parse(os.Args[1:]))

	closeLog, err := setupLogging()
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	runtime.GOMAXPROCS(*nThreads)
	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.", effectiveNThreads)

	runID := uuid.New()
	log.Infof("Run id: %s", runID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := run(ctx)
	summary.RunID = runID.String()
	summary.NThreads = effectiveNThreads
	summary.Version = version
	summary.CommandLine = os.Args
	if err != nil {
		summary.Error = err.Error()
	}

	// output summary in json format
	if *jsonF != "" {
		if err := summary.WriteFile(*jsonF); err != nil {
			log.Error("Error creating json output file:", err)
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}
