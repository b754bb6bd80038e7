package domain

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// PrecedenceGraph encodes the must-execute-before relation between
// transactions: an edge t1 -> t2 means some operation of t1 conflicts with a
// later operation of t2. Adjacency is kept in sorted sets so rendering the
// graph is deterministic.
type PrecedenceGraph struct {
	adjacency map[string]*treeset.Set
}

func NewPrecedenceGraph() *PrecedenceGraph {
	return &PrecedenceGraph{
		adjacency: make(map[string]*treeset.Set),
	}
}

func (g *PrecedenceGraph) AddNode(transactionId string) {
	if _, exists := g.adjacency[transactionId]; !exists {
		g.adjacency[transactionId] = treeset.NewWithStringComparator()
	}
}

// AddEdge adds transactionId -> successor. Self-edges are never recorded.
func (g *PrecedenceGraph) AddEdge(transactionId, successor string) {
	if transactionId == successor {
		return
	}
	g.AddNode(transactionId)
	g.AddNode(successor)
	g.adjacency[transactionId].Add(successor)
}

func (g *PrecedenceGraph) HasEdge(transactionId, successor string) bool {
	set, exists := g.adjacency[transactionId]
	return exists && set.Contains(successor)
}

func (g *PrecedenceGraph) HasNode(transactionId string) bool {
	_, exists := g.adjacency[transactionId]
	return exists
}

func (g *PrecedenceGraph) Nodes() []string {
	nodes := make([]string, 0, len(g.adjacency))
	for transactionId := range g.adjacency {
		nodes = append(nodes, transactionId)
	}
	sort.Strings(nodes)
	return nodes
}

// Successors returns the adjacency of a node in sorted order. A node with no
// outgoing edges yields an empty slice.
func (g *PrecedenceGraph) Successors(transactionId string) []string {
	set, exists := g.adjacency[transactionId]
	if !exists {
		return []string{}
	}
	successors := make([]string, 0, set.Size())
	for _, value := range set.Values() {
		successors = append(successors, value.(string))
	}
	return successors
}

// Adjacency flattens the graph into a display-friendly map of node to sorted
// successor list.
func (g *PrecedenceGraph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adjacency))
	for transactionId := range g.adjacency {
		out[transactionId] = g.Successors(transactionId)
	}
	return out
}

func (g *PrecedenceGraph) Size() int {
	return len(g.adjacency)
}
