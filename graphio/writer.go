package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/redistrict/plan"
)

// WritePlan writes p as "precinct<TAB>district" lines sorted by precinct.
func WritePlan(w io.Writer, p *plan.Plan) error {
	if p == nil {
		return plan.ErrNilPlan
	}
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	for i, id := range p.Precincts() {
		d, _ := p.District(id)
		if err := writer.Write([]string{id, d.String()}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SavePlan writes p to filePath, creating parent directories as needed.
func SavePlan(filePath string, p *plan.Plan) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WritePlan(file, p); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
