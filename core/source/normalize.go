package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
)

// Options controls how a raw table is turned into records.
type Options struct {
	HeaderRow int
	ChunkSize int
	Workers   int
}

func (o Options) withDefaults() Options {
	if o.HeaderRow < 0 {
		o.HeaderRow = 0
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = 5000
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

// Result is the outcome of a fetch.
type Result struct {
	// Records holds every row with a non-blank key, in sheet order.
	Records []Record
	// Malformed counts data rows dropped for a blank key.
	Malformed int
	// Total counts data rows below the header, malformed included.
	Total int
	// Warning is set when a best-effort source degraded to an empty result.
	Warning string
}

type chunkResult struct {
	records   []Record
	malformed int
}

// Normalize maps a raw table to records. Rows above opts.HeaderRow are banner rows
// and ignored; the header is resolved once and data rows are decoded in chunks on a
// bounded pool. Chunk order is preserved.
func Normalize(ctx context.Context, table [][]string, schema Schema, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if len(table) <= opts.HeaderRow {
		return nil, fmt.Errorf("sheet has %d rows, header expected at row %d: %w", len(table), opts.HeaderRow, ErrMissingKeyColumn)
	}

	headerCells := table[opts.HeaderRow]
	header := make(map[string]int, len(headerCells))
	for i, cell := range headerCells {
		name := NormalizeHeader(cell)
		if name == "" {
			continue
		}
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}

	columns, err := schema.resolve(header)
	if err != nil {
		return nil, fmt.Errorf("%s schema: %w", schema.Name, err)
	}

	data := table[opts.HeaderRow+1:]
	result := &Result{Total: len(data)}
	if len(data) == 0 {
		return result, nil
	}

	pool := pond.NewResultPool[chunkResult](opts.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	tasks := make([]pond.Result[chunkResult], 0, len(data)/opts.ChunkSize+1)
	for start := 0; start < len(data); start += opts.ChunkSize {
		end := min(start+opts.ChunkSize, len(data))
		chunk := data[start:end]
		tasks = append(tasks, pool.Submit(func() chunkResult {
			return decodeChunk(chunk, header, columns)
		}))
	}

	result.Records = make([]Record, 0, len(data))
	for _, task := range tasks {
		chunk, err := task.Wait()
		if err != nil {
			return nil, fmt.Errorf("decode rows: %w", err)
		}
		result.Records = append(result.Records, chunk.records...)
		result.Malformed += chunk.malformed
	}

	return result, nil
}

func decodeChunk(lines [][]string, header map[string]int, columns map[Field]string) chunkResult {
	out := chunkResult{records: make([]Record, 0, len(lines))}
	for _, line := range lines {
		row := make(Row, len(columns))
		for _, name := range columns {
			idx := header[name]
			if idx < len(line) {
				row[name] = strings.TrimSpace(line[idx])
			}
		}
		rec, ok := decode(row, columns)
		if !ok {
			out.malformed++
			continue
		}
		out.records = append(out.records, rec)
	}
	return out
}
