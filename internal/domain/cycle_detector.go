package domain

type CycleDetector interface {
	HasCycle(graph *PrecedenceGraph) bool
}

// DFSCycleDetector finds cycles with a depth-first search carrying a visited
// set and the set of nodes on the active recursion path. A successor that is
// already on the path is a back-edge, hence a cycle.
type DFSCycleDetector struct {
}

func (d *DFSCycleDetector) HasCycle(graph *PrecedenceGraph) bool {
	visited := make(map[string]bool, graph.Size())
	onStack := make(map[string]bool, graph.Size())
	for _, node := range graph.Nodes() {
		if visited[node] {
			continue
		}
		if d.visit(graph, node, visited, onStack) {
			return true
		}
	}
	return false
}

func (d *DFSCycleDetector) visit(graph *PrecedenceGraph, node string, visited, onStack map[string]bool) bool {
	visited[node] = true
	onStack[node] = true
	for _, successor := range graph.Successors(node) {
		if !visited[successor] {
			if d.visit(graph, successor, visited, onStack) {
				return true
			}
		} else if onStack[successor] {
			return true
		}
	}
	onStack[node] = false
	return false
}
