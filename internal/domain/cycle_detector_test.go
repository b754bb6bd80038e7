package domain

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDFSCycleDetector_EmptyGraphHasNoCycle(t *testing.T) {
	d := &DFSCycleDetector{}

	assert.False(t, d.HasCycle(NewPrecedenceGraph()))
}

func TestDFSCycleDetector_DetectsTwoCycle(t *testing.T) {
	d := &DFSCycleDetector{}

	graph := NewPrecedenceGraph()
	graph.AddEdge("T1", "T2")
	graph.AddEdge("T2", "T1")

	assert.True(t, d.HasCycle(graph))
}

func TestDFSCycleDetector_DagHasNoCycle(t *testing.T) {
	d := &DFSCycleDetector{}

	graph := NewPrecedenceGraph()
	graph.AddEdge("T1", "T2")
	graph.AddEdge("T1", "T3")
	graph.AddEdge("T2", "T4")
	graph.AddEdge("T3", "T4")

	assert.False(t, d.HasCycle(graph))
}

func TestDFSCycleDetector_DetectsLongCycleBehindATail(t *testing.T) {
	d := &DFSCycleDetector{}

	graph := NewPrecedenceGraph()
	graph.AddEdge("T0", "T1")
	graph.AddEdge("T1", "T2")
	graph.AddEdge("T2", "T3")
	graph.AddEdge("T3", "T1")

	assert.True(t, d.HasCycle(graph))
}

func Test_GivenSharedDiamond_WhenRevisitedOffTheStack_thenNoCycleReported(t *testing.T) {
	d := &DFSCycleDetector{}

	// T4 is reached twice, the second time fully explored and off the
	// recursion path. That must not count as a back-edge.
	graph := NewPrecedenceGraph()
	graph.AddEdge("T1", "T2")
	graph.AddEdge("T2", "T4")
	graph.AddEdge("T1", "T3")
	graph.AddEdge("T3", "T4")
	graph.AddNode("T5")

	assert.False(t, d.HasCycle(graph))
}

func TestDFSCycleDetector_DisconnectedComponentWithCycle(t *testing.T) {
	d := &DFSCycleDetector{}

	graph := NewPrecedenceGraph()
	graph.AddEdge("T1", "T2")
	graph.AddEdge("T3", "T4")
	graph.AddEdge("T4", "T5")
	graph.AddEdge("T5", "T3")

	assert.True(t, d.HasCycle(graph))
}
