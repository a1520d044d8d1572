package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"k8s.io/klog/v2"
)

// Backward computes the gradient of v with respect to every node it depends
// on. See the package function Backward.
func (v *Value) Backward() error {
	return Backward(v)
}

// Backward computes d(root)/d(node) for every node reachable from root and
// adds it into the node's gradient.
//
// Algorithm:
//  1. Sort the graph topologically (operands before consumers).
//  2. Seed root's gradient with 1, or with a ones matrix for a matrix root,
//     which differentiates the sum of its elements.
//  3. Walk the order in reverse, applying each node's local derivative rule
//     once. Reverse topological order guarantees a node's gradient is
//     complete before it is propagated to its operands.
//
// Gradients are accumulated, never reset: calling Backward twice, or on two
// graphs sharing nodes, adds the new contributions to the old ones. Call
// ZeroGrad first to start from zero.
//
// A *CycleError is returned, before any gradient changes, if the graph is
// not acyclic.
func Backward(root *Value) error {
	order, err := TopologicalOrder(root)
	if err != nil {
		return err
	}
	klog.V(2).Infof("backward: root %s, %d nodes in topological order", root.name(), len(order))

	if root.matrix != nil {
		root.gradMatrix.Apply(func(_, _ int, _ float64) float64 { return 1 }, root.gradMatrix)
	} else {
		root.grad = 1
	}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		accumulate(node)
		if klog.V(4).Enabled() && !node.IsLeaf() {
			klog.Infof("backward: %s %q propagated grad %g", node.name(), node.OpLabel(), node.grad)
		}
	}
	return nil
}

// accumulate adds v's contribution into the gradients of its operands:
// grad(operand) += d(v)/d(operand) · grad(v). A repeated operand (x.Add(x))
// receives one contribution per occurrence. Leaves are untouched.
func accumulate(v *Value) {
	switch v.op {
	case ops.None:
		return
	case ops.MatMul:
		a, b := v.inputs[0], v.inputs[1]
		gradA, gradB := ops.MatMulBackward(a.matrix, b.matrix, v.gradMatrix)
		a.gradMatrix.Add(a.gradMatrix, gradA)
		b.gradMatrix.Add(b.gradMatrix, gradB)
		return
	}

	rule := ops.Registry[v.op]
	x := v.inputs[0]
	var y *Value
	var yData float64
	if rule.Arity == 2 {
		y = v.inputs[1]
		yData = y.data
	}
	dx, dy := rule.Local(x.data, yData, v.param, v.data)
	x.grad += dx * v.grad
	if y != nil {
		y.grad += dy * v.grad
	}
}

// ZeroGrad resets the gradient of every node reachable from root.
func ZeroGrad(root *Value) error {
	order, err := TopologicalOrder(root)
	if err != nil {
		return err
	}
	for _, node := range order {
		node.grad = 0
		if node.gradMatrix != nil {
			node.gradMatrix.Zero()
		}
	}
	klog.V(2).Infof("zero grad: root %s, %d nodes reset", root.name(), len(order))
	return nil
}
