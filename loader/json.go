package loader

import (
	"errors"
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"

	"github.com/arlojax/graphon/graphcore"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonEdge mirrors one entry of a node's "edges" array (spec §6 "JSON
// graph").
type jsonEdge struct {
	To         string      `json:"to"`
	Directed   bool        `json:"directed"`
	Weighted   bool        `json:"weighted"`
	Weight     interface{} `json:"weight"`
	TypeOfEdge string      `json:"typeOfEdge"`
}

type jsonNode struct {
	Features map[string]interface{} `json:"features"`
	Coords   interface{}            `json:"coords"`
	Edges    []jsonEdge             `json:"edges"`
}

// resolveWeight parses a JSON weight field, which is either a JSON number
// or one of the sentinel strings "Infinity", "-Infinity", "MAX", "MIN", or
// "undefined" (spec §6, scenario S6). A missing field (nil) returns
// graphcore.DefaultWeight.
func resolveWeight(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return graphcore.DefaultWeight, nil
	case float64:
		return v, nil
	case string:
		switch v {
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		case "MAX":
			return math.MaxFloat64, nil
		case "MIN":
			return -math.MaxFloat64, nil
		case "undefined":
			return graphcore.DefaultWeight, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrMalformedWeight, v)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrMalformedWeight, raw)
	}
}

func undirectedKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// LoadJSON parses the spec §6 JSON graph format from r into a new Graph.
// Edge ids follow "{src}_{tgt}_{d|u}"; a duplicate id, or the reverse id
// of an already-loaded undirected edge, is silently skipped rather than
// treated as an error — the format expects undirected edges to be
// declared from both endpoints' adjacency lists.
func LoadJSON(r io.Reader) (*graphcore.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
	}

	order, nodes, err := decodeDataInOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
	}

	g := graphcore.NewGraph()
	for _, id := range order {
		n := nodes[id]
		if _, err := g.AddNodeByID(id, graphcore.NodeConfig{Features: n.Features}); err != nil {
			return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
		}
	}

	seenUndirected := make(map[string]struct{})
	for _, src := range order {
		n := nodes[src]
		for _, e := range n.Edges {
			kind := "u"
			if e.Directed {
				kind = "d"
			}
			id := fmt.Sprintf("%s_%s_%s", src, e.To, kind)

			if !e.Directed {
				key := undirectedKey(src, e.To)
				if _, dup := seenUndirected[key]; dup {
					continue
				}
				seenUndirected[key] = struct{}{}
			}

			weight, err := resolveWeight(e.Weight)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
			}
			weighted := e.Weighted || e.Weight != nil

			_, err = g.AddEdgeByID(id, src, e.To, graphcore.EdgeConfig{
				Label:    e.TypeOfEdge,
				Directed: e.Directed,
				Weighted: weighted,
				Weight:   weight,
			})
			if err != nil {
				if errors.Is(err, graphcore.ErrDuplicate) {
					continue
				}
				return nil, fmt.Errorf("%w: %v", graphcore.ErrIOError, err)
			}
		}
	}

	return g, nil
}

// decodeDataInOrder walks the document's top-level "data" object with
// jsoniter's low-level Iterator, collecting node ids in document order.
// Unmarshaling "data" straight into a map[string]jsonNode, the way a
// single Decode call would, loses that order because Go map iteration
// order is randomized — and node insertion order is a hard contract this
// module relies on (spec §5/§8), so LoadJSON cannot add nodes to the
// graph in whatever order a map happens to range over.
func decodeDataInOrder(raw []byte) ([]string, map[string]jsonNode, error) {
	order := make([]string, 0)
	nodes := make(map[string]jsonNode)

	iter := jsoniter.ParseBytes(jsonAPI, raw)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if field != "data" {
			it.Skip()
			return true
		}
		it.ReadObjectCB(func(it *jsoniter.Iterator, id string) bool {
			var n jsonNode
			it.ReadVal(&n)
			order = append(order, id)
			nodes[id] = n
			return true
		})
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, nil, iter.Error
	}
	return order, nodes, nil
}
