package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arlojax/graphon/graphcore"
)

// CSVEdgeListConfig configures LoadCSVEdgeList (spec §6 "CSV edge list").
type CSVEdgeListConfig struct {
	Separator        rune // default ','
	ExplicitDirection bool // rows carry a direction token: source,target,direction[,weight]
	DirectionMode    bool // used for every row when ExplicitDirection is false
	Weighted         bool
}

func (c CSVEdgeListConfig) withDefaults() CSVEdgeListConfig {
	if c.Separator == 0 {
		c.Separator = ','
	}
	return c
}

// LoadCSVEdgeList parses one line per edge: "source,target,direction[,weight]"
// when cfg.ExplicitDirection, else "source,target[,weight]" with every row
// using cfg.DirectionMode.
func LoadCSVEdgeList(r io.Reader, cfg CSVEdgeListConfig) (*graphcore.Graph, error) {
	cfg = cfg.withDefaults()
	reader := csv.NewReader(r)
	reader.Comma = cfg.Separator
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	g := graphcore.NewGraph()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%w: edge row needs at least 2 fields, got %d", graphcore.ErrIOError, len(record))
		}

		src, dst := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		directed := cfg.DirectionMode
		weightIdx := 2
		if cfg.ExplicitDirection {
			if len(record) < 3 {
				return nil, fmt.Errorf("%w: explicit-direction row needs a direction field", graphcore.ErrIOError)
			}
			directed = strings.EqualFold(strings.TrimSpace(record[2]), "directed") || strings.TrimSpace(record[2]) == "d"
			weightIdx = 3
		}

		weight := graphcore.DefaultWeight
		weighted := cfg.Weighted
		if len(record) > weightIdx {
			w, err := strconv.ParseFloat(strings.TrimSpace(record[weightIdx]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: edge weight %q: %v", graphcore.ErrIOError, record[weightIdx], err)
			}
			weight = w
			weighted = true
		}

		if _, err := g.AddEdgeByID("", src, dst, graphcore.EdgeConfig{
			Directed: directed,
			Weighted: weighted,
			Weight:   weight,
		}); err != nil {
			return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
		}
	}

	return g, nil
}
