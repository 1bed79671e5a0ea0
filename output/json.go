package output

import (
	"encoding/json"
	"io"

	"github.com/orthologr/gestimator/pairwise"
)

// row is a result with the p-distance.
type row struct {
	pairwise.Result
	PDistance float64 `json:"pdistance"`
}

func init() {
	register("json", ".json", func(fileName string, results []pairwise.Result) error {
		return writeAtomic(fileName, func(w io.Writer) error {
			return WriteJSON(w, results)
		})
	})
}

// WriteJSON writes results as a JSON array.
func WriteJSON(w io.Writer, results []pairwise.Result) error {
	rows := make([]row, len(results))
	for i, r := range results {
		rows[i] = row{Result: r, PDistance: r.PDistance()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
