package autodiff

import (
	"fmt"

	"github.com/axon-ml/axon/internal/tensor"
)

// Backward runs reverse-mode differentiation from a scalar loss node.
//
// Nodes are visited in reverse topological order, so every consumer has
// contributed its incoming gradient before a node's own Backward rule
// runs. Gradients accumulate into each input's accumulator; Variable
// leaves retain theirs for the optimizer, everything else dies with the
// graph.
func Backward(loss *Node) error {
	if len(loss.Shape()) != 0 {
		return fmt.Errorf("autodiff: Backward requires a scalar node, got shape %v", loss.Shape())
	}

	loss.accumulate(tensor.Scalar(1))

	order := topoSort(loss)
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op == nil || n.grad == nil {
			continue
		}
		inputGrads := n.op.Backward(n.grad)
		for j, in := range n.inputs {
			if j >= len(inputGrads) || inputGrads[j] == nil {
				continue
			}
			if !in.requiresGrad {
				continue
			}
			in.accumulate(inputGrads[j])
		}
	}
	return nil
}

// topoSort returns the nodes reachable from root in topological order
// (inputs before consumers), via iterative post-order DFS over input
// edges. A node is appended only after every input below it has been
// appended, so a node shared by several consumers lands before all of
// them even when a later consumer rediscovers it. Duplicate frames from
// such sharing are dropped when they surface. Subgraphs that cannot
// receive a gradient are skipped.
func topoSort(root *Node) []*Node {
	var order []*Node
	done := make(map[*Node]bool)

	type frame struct {
		node     *Node
		expanded bool
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded {
			if !done[top.node] {
				done[top.node] = true
				order = append(order, top.node)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if done[top.node] {
			stack = stack[:len(stack)-1]
			continue
		}
		top.expanded = true
		for _, in := range top.node.inputs {
			if done[in] || !in.requiresGrad {
				continue
			}
			stack = append(stack, frame{node: in})
		}
	}
	return order
}
