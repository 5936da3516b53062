// graph.go - topological tick driver over a fixed set of nodes

package dsp

// Graph holds a fixed set of nodes in an order that respects the input
// dependency DAG; Tick advances every node exactly once, producer before
// consumer.
type Graph struct {
	order []Node
}

// NewGraph validates that the input wiring among nodes forms a DAG and
// returns a Graph whose Tick advances them in topological order. Nodes
// referenced only as producers (not passed in directly) do not need to be
// included; every node passed in must have all of its currently-bound
// inputs point at other nodes in the graph or outside it transitively
// reachable through binds made later.
func NewGraph(nodes ...Node) (*Graph, error) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[Node]int, len(nodes))
	for _, n := range nodes {
		color[n] = white
	}
	var order []Node
	var visit func(n Node) error
	visit = func(n Node) error {
		switch color[n] {
		case black:
			return nil
		case gray:
			return ErrCycle
		}
		color[n] = gray
		for i := 0; i < n.NumInputs(); i++ {
			src, _, bound := n.inputSource(i)
			if !bound {
				continue
			}
			if _, tracked := color[src]; tracked {
				if err := visit(src); err != nil {
					return err
				}
			}
		}
		color[n] = black
		order = append(order, n)
		return nil
	}
	for _, n := range nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return &Graph{order: order}, nil
}

// Tick advances every node in the graph once, producers before consumers.
func (g *Graph) Tick() {
	for _, n := range g.order {
		n.Update()
	}
}

// Nodes returns the graph's nodes in their scheduled order.
func (g *Graph) Nodes() []Node {
	return g.order
}
