package main

import (
	"bytes"
	"strings"
	"testing"
)

const gcSnippet = `--**************************************************************************
--  This is the NCBI genetic code table
--**************************************************************************
Genetic-code-table ::= {
 {
  name "Standard" ,
  name "SGC0" ,
  id 1 ,
  ncbieaa  "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
  sncbieaa "---M------**--*----M---------------M----------------------------"
  -- Base1  TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
 },
 {
  name "Vertebrate Mitochondrial" ,
  name "SGC1" ,
  id 2 ,
  ncbieaa  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
  sncbieaa "----------**--------------------MMMM----------**---M------------"
 }
}
`

func TestParse(tst *testing.T) {
	tables, err := parse(strings.NewReader(gcSnippet))
	if err != nil {
		tst.Fatal("Error parsing:", err)
	}
	if len(tables) != 2 {
		tst.Fatal("Expected 2 tables, got", len(tables))
	}
	t := tables[1]
	if t.id != 2 || t.name != "Vertebrate Mitochondrial" || t.shortName != "SGC1" {
		tst.Error("Wrong table:", t)
	}
	if !strings.HasPrefix(t.ncbieaa, "FFLL") || len(t.sncbieaa) != 64 {
		tst.Error("Wrong table codes:", t)
	}
}

func TestParseErrors(tst *testing.T) {
	for _, s := range []string{
		"",
		"Genetic-code-table := {",
		"Genetic-code-table ::= { { id 1 ",
		"Genetic-code-table ::= { { ncbieaa \"FFLL\" } }",
		"Genetic-code-table ::= { } }",
		"Something ::= { }",
	} {
		if _, err := parse(strings.NewReader(s)); err == nil {
			tst.Errorf("Expected error for %q", s)
		}
	}
}

func TestGenerate(tst *testing.T) {
	tables, err := parse(strings.NewReader(gcSnippet))
	if err != nil {
		tst.Fatal("Error parsing:", err)
	}
	var b bytes.Buffer
	if err := generate(&b, []table{tables[1], tables[0]}); err != nil {
		tst.Fatal("Error generating:", err)
	}
	src := b.String()
	if !strings.HasPrefix(src, "package bio\n") {
		tst.Error("Wrong package clause")
	}
	i1 := strings.Index(src, "1: newGeneticCode(1,")
	i2 := strings.Index(src, "2: newGeneticCode(2,")
	if i1 < 0 || i2 < 0 || i1 > i2 {
		tst.Error("Tables are missing or not sorted:\n", src)
	}
	if !strings.Contains(src, `"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG"`) {
		tst.Error("Code string is missing:\n", src)
	}
}
