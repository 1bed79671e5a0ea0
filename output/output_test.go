package output

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orthologr/gestimator/pairwise"
)

var results1 = []pairwise.Result{
	{Query: "a", Subject: "b", Codons: 5, Sites: 15, Differences: 3, Synonymous: 1, Nonsynonymous: 2, Transitions: 3},
	{Query: "a", Subject: "c", Codons: 4, Sites: 12, Excluded: 1},
}

func TestFormats(tst *testing.T) {
	formats := strings.Join(Formats(), ",")
	if formats != "json,sqlite,tsv" {
		tst.Error("Unexpected formats:", formats)
	}
	if ext, err := Extension(DefaultFormat); err != nil || ext != ".tsv" {
		tst.Error("Wrong default extension:", ext, err)
	}
	if _, err := Extension("xml"); err == nil {
		tst.Error("Expected error for unknown format")
	}
	if err := Write("xml", "x", nil); err == nil {
		tst.Error("Expected error for unknown format")
	}
}

func TestWriteTSV(tst *testing.T) {
	var b bytes.Buffer
	if err := WriteTSV(&b, results1); err != nil {
		tst.Fatal("Error:", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		tst.Fatal("Expected 3 lines, got", len(lines))
	}
	if lines[0] != strings.Join(Columns, "\t") {
		tst.Error("Wrong header:", lines[0])
	}
	if lines[1] != "a\tb\t5\t15\t3\t1\t2\t0\t3\t0\t0\t0.200000" {
		tst.Error("Wrong row:", lines[1])
	}
}

func TestWriteJSON(tst *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, results1); err != nil {
		tst.Fatal("Error:", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(b.Bytes(), &rows); err != nil {
		tst.Fatal("Error decoding:", err)
	}
	if len(rows) != 2 {
		tst.Fatal("Expected 2 rows, got", len(rows))
	}
	for _, c := range Columns {
		if _, ok := rows[0][c]; !ok {
			tst.Error("Missing column", c)
		}
	}
	if rows[0]["pdistance"] != 0.2 {
		tst.Error("Wrong p-distance:", rows[0]["pdistance"])
	}
}

func TestWriteFile(tst *testing.T) {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "out.tsv")
	if err := Write("tsv", fn, results1); err != nil {
		tst.Fatal("Error:", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		tst.Fatal("Error reading:", err)
	}
	if !strings.HasPrefix(string(b), "query\tsubject") {
		tst.Error("Wrong file contents")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		tst.Error("Temporary files left:", len(entries))
	}
}

func TestWriteFileNoDir(tst *testing.T) {
	fn := filepath.Join(tst.TempDir(), "missing", "out.tsv")
	if err := Write("tsv", fn, results1); err == nil {
		tst.Error("Expected error for missing directory")
	}
	if _, err := os.Stat(fn); !os.IsNotExist(err) {
		tst.Error("Output file should not exist")
	}
}

func TestWriteSQLite(tst *testing.T) {
	fn := filepath.Join(tst.TempDir(), "out.sqlite")
	if err := Write("sqlite", fn, results1); err != nil {
		tst.Fatal("Error:", err)
	}
	db, err := sql.Open("sqlite", fn)
	if err != nil {
		tst.Fatal("Error opening:", err)
	}
	defer db.Close()
	var n, diffs int
	if err := db.QueryRow("SELECT COUNT(*), SUM(differences) FROM results").Scan(&n, &diffs); err != nil {
		tst.Fatal("Error querying:", err)
	}
	if n != 2 || diffs != 3 {
		tst.Error("Wrong table contents:", n, diffs)
	}
}

func TestWriteSQLiteFile(tst *testing.T) {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "out.sqlite")
	if err := Write("sqlite", fn, results1); err != nil {
		tst.Fatal("Error:", err)
	}
	info, err := os.Stat(fn)
	if err != nil {
		tst.Fatal("Error:", err)
	}
	if info.Mode().Perm() != 0644 {
		tst.Errorf("Wrong file mode: %v", info.Mode().Perm())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		tst.Error("Temporary files left:", len(entries))
	}

	fn = filepath.Join(dir, "missing", "out.sqlite")
	if err := Write("sqlite", fn, results1); err == nil {
		tst.Error("Expected error for missing directory")
	}
	if _, err := os.Stat(fn); !os.IsNotExist(err) {
		tst.Error("Output file should not exist")
	}
}
