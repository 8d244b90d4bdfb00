package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

// LoadProcesses reads rows of pid,burst,arrival[,priority].
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CSV has no processes", core.ErrMissingInput)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d: want 3 or 4 columns, got %d", core.ErrInvalidInput, i+1, len(row))
		}
		values := make([]int, len(row))
		for j, cell := range row {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not an integer", core.ErrInvalidInput, i+1, j+1, cell)
			}
			values[j] = v
		}
		p := core.Process{
			Pid:         values[0],
			BurstTime:   values[1],
			ArrivalTime: values[2],
		}
		if len(values) == 4 {
			p.Priority = values[3]
		}
		processes = append(processes, p)
	}
	return processes, nil
}
