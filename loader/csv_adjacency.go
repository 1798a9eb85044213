package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arlojax/graphon/graphcore"
)

// CSVAdjacencyConfig configures LoadCSVAdjacency (spec §6 "CSV adjacency
// list").
type CSVAdjacencyConfig struct {
	Separator      string // default ","
	ExplicitWeight bool   // each neighbor id is followed by its weight as the next token
	DirectionMode  bool   // true = directed edges, false = undirected
	Weighted       bool   // mark produced edges as weighted when ExplicitWeight is false
}

func (c CSVAdjacencyConfig) withDefaults() CSVAdjacencyConfig {
	if c.Separator == "" {
		c.Separator = ","
	}
	return c
}

// LoadCSVAdjacency parses one line per source node; the first token is the
// source id, subsequent tokens are neighbor ids, or "id<sep>weight" pairs
// (the weight is the token after the id) when cfg.ExplicitWeight is set;
// a trailing id with no weight token gets DefaultWeight. Rows have a variable
// token count, so this reads raw lines rather than going through
// encoding/csv's fixed-field-count record model.
func LoadCSVAdjacency(r io.Reader, cfg CSVAdjacencyConfig) (*graphcore.Graph, error) {
	cfg = cfg.withDefaults()
	sc := bufio.NewScanner(r)

	g := graphcore.NewGraph()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.Split(line, cfg.Separator)
		src := strings.TrimSpace(tokens[0])
		if _, err := g.AddNodeByID(src, graphcore.NodeConfig{}); err != nil {
			return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
		}

		rest := tokens[1:]
		for k := 0; k < len(rest); k++ {
			tok := strings.TrimSpace(rest[k])
			if tok == "" {
				continue
			}
			dst := tok
			weight := graphcore.DefaultWeight
			weighted := cfg.Weighted
			if cfg.ExplicitWeight && k+1 < len(rest) {
				k++
				w, err := strconv.ParseFloat(strings.TrimSpace(rest[k]), 64)
				if err != nil {
					return nil, fmt.Errorf("%w: neighbor weight %q: %v", graphcore.ErrIOError, rest[k], err)
				}
				weight = w
				weighted = true
			}

			if _, err := g.AddEdgeByID("", src, dst, graphcore.EdgeConfig{
				Directed: cfg.DirectionMode,
				Weighted: weighted,
				Weight:   weight,
			}); err != nil {
				return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
	}
	return g, nil
}
