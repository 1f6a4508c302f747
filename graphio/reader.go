// Package graphio reads precinct graphs and plans from delimited text files
// and writes plans back out.
//
// Formats:
//   - adjacency: CSV, one "a,b" pair per line, optional "from,to" header.
//     A UTF-8 byte order mark on the first line is ignored. Each unordered
//     pair may appear in both directions.
//   - population: TSV "precinct<TAB>population".
//   - boundary: CSV, the precinct ID is the first column.
//   - plan: TSV "precinct<TAB>district".
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
)

// AdjacencyHeader is the first field of an optional adjacency header row.
const AdjacencyHeader = "from"

const bom = "\ufeff"

// ErrMalformed indicates a record that cannot be parsed.
var ErrMalformed = errors.New("graphio: malformed record")

func newReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

// readRecords streams records to fn with their 1-based line numbers,
// stripping a leading byte order mark and skipping blank records.
func readRecords(r io.Reader, comma rune, fn func(rec []string, line int) error) error {
	cr := newReader(r, comma)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if line == 1 && len(rec) > 0 {
			rec[0] = strings.TrimPrefix(rec[0], bom)
		}
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		if err := fn(rec, line); err != nil {
			return err
		}
	}
}

func validateRecordLength(rec []string, min, line int) error {
	if len(rec) < min {
		return fmt.Errorf("line %d: expected at least %d columns, got %d: %w", line, min, len(rec), ErrMalformed)
	}
	return nil
}

// ReadAdjacency adds every "a,b" pair in r to g as an edge. Repeated pairs
// are ignored.
func ReadAdjacency(r io.Reader, g *core.Graph) error {
	return readRecords(r, ',', func(rec []string, line int) error {
		if err := validateRecordLength(rec, 2, line); err != nil {
			return err
		}
		a, b := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if line == 1 && strings.EqualFold(a, AdjacencyHeader) {
			return nil
		}
		if g.HasEdge(a, b) {
			return nil
		}
		if _, err := g.AddEdge(a, b); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
}

// ReadPopulation sets the population of every precinct listed in r. Each
// precinct must already be in g.
func ReadPopulation(r io.Reader, g *core.Graph) error {
	return readRecords(r, '\t', func(rec []string, line int) error {
		if err := validateRecordLength(rec, 2, line); err != nil {
			return err
		}
		pop, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid population: %w", line, errors.Join(ErrMalformed, err))
		}
		if err := g.SetPopulation(strings.TrimSpace(rec[0]), pop); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
}

// ReadBoundary returns the set of precincts listed in the first column of r.
func ReadBoundary(r io.Reader) (map[string]bool, error) {
	set := make(map[string]bool)
	err := readRecords(r, ',', func(rec []string, _ int) error {
		set[strings.TrimSpace(rec[0])] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// ReadPlan parses a "precinct<TAB>district" listing. The result is not
// validated against any graph.
func ReadPlan(r io.Reader) (*plan.Plan, error) {
	assign := make(map[string]plan.District)
	err := readRecords(r, '\t', func(rec []string, line int) error {
		if err := validateRecordLength(rec, 2, line); err != nil {
			return err
		}
		d, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return fmt.Errorf("line %d: invalid district: %w", line, errors.Join(ErrMalformed, err))
		}
		id := strings.TrimSpace(rec[0])
		if prev, dup := assign[id]; dup && prev != plan.District(d) {
			return fmt.Errorf("line %d: precinct %s assigned twice: %w", line, id, ErrMalformed)
		}
		assign[id] = plan.District(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan.FromMap(assign), nil
}

// LoadGraph builds a graph from an adjacency file and, when popPath is not
// empty, a population file.
func LoadGraph(adjPath, popPath string) (*core.Graph, error) {
	g := core.NewGraph()
	if err := readFile(adjPath, func(r io.Reader) error { return ReadAdjacency(r, g) }); err != nil {
		return nil, err
	}
	if popPath != "" {
		if err := readFile(popPath, func(r io.Reader) error { return ReadPopulation(r, g) }); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// LoadBoundary reads a boundary file.
func LoadBoundary(path string) (map[string]bool, error) {
	var set map[string]bool
	err := readFile(path, func(r io.Reader) error {
		var err error
		set, err = ReadBoundary(r)
		return err
	})
	return set, err
}

// LoadPlan reads a plan file.
func LoadPlan(path string) (*plan.Plan, error) {
	var p *plan.Plan
	err := readFile(path, func(r io.Reader) error {
		var err error
		p, err = ReadPlan(r)
		return err
	})
	return p, err
}

func readFile(path string, fn func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := fn(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
