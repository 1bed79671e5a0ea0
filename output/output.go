// Package output writes tables of pairwise results. Every writer
// produces a complete file or nothing: data is written to a temporary
// file in the destination directory which is renamed on success.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/op/go-logging"

	"github.com/orthologr/gestimator/pairwise"
)

var log = logging.MustGetLogger("output")

// DefaultFormat is used if no format is specified.
const DefaultFormat = "tsv"

// writer writes results to a file.
type writer struct {
	ext   string
	write func(fileName string, results []pairwise.Result) error
}

// writers is the format registry, formats register themselves in init.
var writers = map[string]writer{}

func register(format, ext string, write func(string, []pairwise.Result) error) {
	writers[format] = writer{ext: ext, write: write}
}

// Formats returns the names of registered formats.
func Formats() []string {
	formats := make([]string, 0, len(writers))
	for f := range writers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Extension returns the file extension (including the dot) for a
// format.
func Extension(format string) (string, error) {
	w, ok := writers[format]
	if !ok {
		return "", fmt.Errorf("unknown output format %q", format)
	}
	return w.ext, nil
}

// Write writes results to fileName in the given format.
func Write(format, fileName string, results []pairwise.Result) error {
	w, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}
	log.Debugf("Writing %d rows to %s (%s)", len(results), fileName, format)
	return w.write(fileName, results)
}

// tempFile creates an empty temporary file next to fileName.
func tempFile(fileName string) (*os.File, error) {
	dir, base := filepath.Split(fileName)
	if dir == "" {
		dir = "."
	}
	return os.CreateTemp(dir, "."+base+".*.tmp")
}

// writeAtomic writes a file using write, the file appears only if
// write succeeds.
func writeAtomic(fileName string, write func(io.Writer) error) (err error) {
	f, err := tempFile(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err = write(f); err != nil {
		return err
	}
	if err = f.Chmod(0644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), fileName)
}
