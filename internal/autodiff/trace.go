package autodiff

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"
)

// NodeInfo is a read-only snapshot of one node, as needed to draw it: a record
// box with label, data and grad, plus an operator box when Op is not empty.
type NodeInfo struct {
	ID    uint64
	Label string
	Op    string // operator tag, "" for leaves
	Data  float64
	Grad  float64

	// Matrix and GradMatrix are copies of a matrix node's value and
	// gradient, nil for scalars.
	Matrix     *mat.Dense
	GradMatrix *mat.Dense
}

// Edge connects an operand (From) to the node computed from it (To).
type Edge struct {
	From, To uint64
}

// Graph is a snapshot of the graph reachable from a root. It holds no
// references to live nodes, so it cannot be used to change them.
type Graph struct {
	Root  uint64
	Nodes []NodeInfo // topological order, root last
	Edges []Edge
}

// Trace takes a snapshot of the graph reachable from root.
func Trace(root *Value) (*Graph, error) {
	order, err := TopologicalOrder(root)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		Root:  root.id,
		Nodes: make([]NodeInfo, 0, len(order)),
	}
	for _, node := range order {
		g.Nodes = append(g.Nodes, NodeInfo{
			ID:         node.id,
			Label:      node.label,
			Op:         node.OpLabel(),
			Data:       node.data,
			Grad:       node.grad,
			Matrix:     node.Matrix(),
			GradMatrix: node.GradMatrix(),
		})
		for _, operand := range node.uniqueInputs() {
			g.Edges = append(g.Edges, Edge{From: operand.id, To: node.id})
		}
	}
	return g, nil
}

// Node returns the snapshot of the node with the given ID.
func (g *Graph) Node(id uint64) (NodeInfo, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeInfo{}, false
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(root=#%d, %s nodes, %s edges)",
		g.Root, humanize.Comma(int64(len(g.Nodes))), humanize.Comma(int64(len(g.Edges))))
}
