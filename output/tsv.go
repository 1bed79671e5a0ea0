package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/orthologr/gestimator/pairwise"
)

// Columns are the column names of the results table.
var Columns = []string{
	"query", "subject", "codons", "sites", "differences",
	"synonymous", "nonsynonymous", "undetermined",
	"transitions", "transversions", "excluded", "pdistance",
}

func init() {
	register("tsv", ".tsv", func(fileName string, results []pairwise.Result) error {
		return writeAtomic(fileName, func(w io.Writer) error {
			return WriteTSV(w, results)
		})
	})
}

// WriteTSV writes a tab separated table with a header.
func WriteTSV(w io.Writer, results []pairwise.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(Columns, "\t")); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.6f\n",
			r.Query, r.Subject, r.Codons, r.Sites, r.Differences,
			r.Synonymous, r.Nonsynonymous, r.Undetermined,
			r.Transitions, r.Transversions, r.Excluded, r.PDistance())
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
