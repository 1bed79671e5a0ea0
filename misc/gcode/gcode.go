// gcode generates the genetic codes table of package bio from the NCBI
// genetic codes file in ASN.1 format.
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
//
// Usage:
//
//	gcode gc.prt > bio/gcodes.go
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/alecthomas/kingpin.v2"
)

// state is a parser state.
type state int

const (
	header state = iota
	assign
	open
	list
	field
	value
	fieldEnd
	tableEnd
	end
)

// table is a single genetic code table.
type table struct {
	id        int
	name      string
	shortName string
	ncbieaa   string
	sncbieaa  string
}

func (t table) String() string {
	return fmt.Sprintf("<GC: id=%d, name=%q, short=%q, aa=%q, start=%q>",
		t.id, t.name, t.shortName, t.ncbieaa, t.sncbieaa)
}

// goString returns a constructor call for package bio.
func (t table) goString() string {
	return fmt.Sprintf("newGeneticCode(%d,\n%q,\n%q)", t.id, t.name, t.ncbieaa)
}

func unquote(s string) (string, error) {
	if len(s) < 2 || !strings.HasPrefix(s, "\"") || !strings.HasSuffix(s, "\"") {
		return "", fmt.Errorf("string is not quoted: %s", s)
	}
	return s[1 : len(s)-1], nil
}

func isWordByte(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitASN1 is a bufio.SplitFunc returning ASN.1 tokens. Comments
// (starting with "--") are returned as a single token.
func splitASN1(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for ; i < len(data); i++ {
		if !unicode.IsSpace(rune(data[i])) {
			break
		}
	}
	data = data[i:]
	skip := i

	if len(data) == 0 {
		return skip, nil, nil
	}

	// need more data
	more := func() (int, []byte, error) {
		if atEOF {
			return 0, nil, io.ErrUnexpectedEOF
		}
		return skip, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			return more()
		}
		if data[1] == '-' {
			a, t, err := bufio.ScanLines(data, atEOF)
			return a + skip, t, err
		}
		if !isWordByte(data[1]) {
			return 0, nil, errors.New("unexpected character after '-'")
		}
	case ':':
		if len(data) < 3 {
			return more()
		}
		if data[1] == ':' && data[2] == '=' {
			return skip + 3, data[:3], nil
		}
		return 0, nil, errors.New("unexpected character after ':'")
	case '"':
		for i := 1; i < len(data); i++ {
			if data[i] == '"' {
				return skip + i + 1, data[:i+1], nil
			}
		}
		return more()
	case '{', '}', ',':
		return skip + 1, data[:1], nil
	}
	if !isWordByte(data[0]) {
		return 0, nil, fmt.Errorf("unknown token starting with %q", data[0])
	}
	i = 1
	for ; i < len(data); i++ {
		if !isWordByte(data[i]) {
			break
		}
	}
	if i == len(data) && !atEOF {
		return skip, nil, nil
	}
	return skip + i, data[:i], nil
}

// parse reads all the genetic code tables.
func parse(rd io.Reader) (tables []table, err error) {
	scanner := bufio.NewScanner(rd)
	scanner.Split(splitASN1)

	st := header
	var t table
	var name string

	expect := func(text, exp string, next state) error {
		if text != exp {
			return fmt.Errorf("expecting '%s', got '%s'", exp, text)
		}
		st = next
		return nil
	}

	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "--") {
			continue
		}

		switch st {
		case header:
			err = expect(text, "Genetic-code-table", assign)
		case assign:
			err = expect(text, "::=", open)
		case open:
			err = expect(text, "{", list)
		case list:
			switch text {
			case "{":
				t = table{}
				st = field
			case "}":
				st = end
			default:
				err = fmt.Errorf("expecting '{' or '}', got '%s'", text)
			}
		case field:
			name = text
			st = value
		case value:
			err = t.set(name, text)
			st = fieldEnd
		case fieldEnd:
			switch text {
			case ",":
				st = field
			case "}":
				tables = append(tables, t)
				st = tableEnd
			default:
				err = fmt.Errorf("expecting ',' or '}', got '%s'", text)
			}
		case tableEnd:
			switch text {
			case ",":
				st = list
			case "}":
				st = end
			default:
				err = fmt.Errorf("expecting ',' or '}', got '%s'", text)
			}
		case end:
			err = errors.New("unexpected symbols at the end of file")
		}
		if err != nil {
			return nil, err
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if st != end {
		return nil, io.ErrUnexpectedEOF
	}
	return tables, nil
}

// set sets a table field from its ASN.1 value. Unknown fields are
// ignored.
func (t *table) set(name, text string) (err error) {
	switch name {
	case "name":
		s, err := unquote(text)
		if err != nil {
			return err
		}
		s = strings.Join(strings.Fields(s), " ")
		// the second name is the short one
		if t.name == "" {
			t.name = s
		} else {
			t.shortName = s
		}
	case "id":
		t.id, err = strconv.Atoi(text)
	case "ncbieaa":
		t.ncbieaa, err = unquote(text)
		if err == nil && len(t.ncbieaa) != 64 {
			err = fmt.Errorf("table %d has %d codons", t.id, len(t.ncbieaa))
		}
	case "sncbieaa":
		t.sncbieaa, err = unquote(text)
	}
	return
}

// generate writes gofmt'ed go source of package bio with the tables
// sorted by id.
func generate(w io.Writer, tables []table) error {
	sort.Slice(tables, func(i, j int) bool { return tables[i].id < tables[j].id })

	var b bytes.Buffer
	fmt.Fprintln(&b, "package bio")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// This file was generated using the gcode program from the NCBI genetic")
	fmt.Fprintln(&b, "// codes file (gc.prt).")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// GeneticCodes holds the genetic codes by NCBI id.")
	fmt.Fprintln(&b, "var GeneticCodes = map[int]*GeneticCode{")
	for _, t := range tables {
		fmt.Fprintf(&b, "%d: %s,\n", t.id, t.goString())
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// Standard is the universal genetic code.")
	fmt.Fprintln(&b, "var Standard = GeneticCodes[1]")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

var (
	app    = kingpin.New("gcode", "generate genetic code tables from the NCBI ASN.1 file")
	gcFile = app.Arg("gc.prt", "NCBI genetic codes file").Required().ExistingFile()
	ids    = app.Flag("id", "only include the table with this id (repeatable)").Ints()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	f, err := os.Open(*gcFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer f.Close()

	tables, err := parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	if len(*ids) > 0 {
		keep := make(map[int]bool, len(*ids))
		for _, id := range *ids {
			keep[id] = true
		}
		filtered := tables[:0]
		for _, t := range tables {
			if keep[t.id] {
				filtered = append(filtered, t)
			}
		}
		tables = filtered
	}

	if err := generate(os.Stdout, tables); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}
}
