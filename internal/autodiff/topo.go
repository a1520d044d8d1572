package autodiff

import (
	"fmt"

	"github.com/pkg/errors"
)

// CycleError reports a node reached again while its own operands were still
// being visited. Graphs built through the public API cannot contain cycles.
type CycleError struct {
	ID    uint64
	Label string
}

// Error implements error.
func (e *CycleError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("autodiff: cycle through node #%d (%s)", e.ID, e.Label)
	}
	return fmt.Sprintf("autodiff: cycle through node #%d", e.ID)
}

// visit states used by TopologicalOrder.
const (
	unvisited uint8 = iota
	onStack
	visited
)

// topoFrame is one entry of the explicit depth-first search stack.
type topoFrame struct {
	node *Value
	next int // index of the next operand to visit
}

// TopologicalOrder returns every node reachable from root, each exactly once,
// with all operands placed before the nodes computed from them. root is last.
//
// The traversal is an iterative post-order depth-first search, so the depth
// of the graph is not limited by the goroutine stack. Nodes are keyed by ID.
func TopologicalOrder(root *Value) ([]*Value, error) {
	if root == nil {
		return nil, errors.New("autodiff: nil root")
	}
	state := map[uint64]uint8{root.id: onStack}
	order := make([]*Value, 0, 64)
	stack := []topoFrame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := top.node.uniqueInputs()
		if top.next < len(operands) {
			child := operands[top.next]
			top.next++
			switch state[child.id] {
			case visited:
				continue
			case onStack:
				return nil, errors.WithStack(&CycleError{ID: child.id, Label: child.label})
			}
			state[child.id] = onStack
			stack = append(stack, topoFrame{node: child})
			continue
		}
		state[top.node.id] = visited
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order, nil
}
