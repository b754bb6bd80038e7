package domain

// AnalysisResult is the outcome of one serializability check. Graph maps
// every transaction of the valid sub-schedule to its sorted successor list.
type AnalysisResult struct {
	Serializable bool
	Warnings     []string
	Graph        map[string][]string
}

// SerializabilityChecker decides whether a schedule is conflict-serializable:
// it builds the precedence graph of the schedule and looks for a cycle.
// Ending anomalies are collected first, from the raw schedule, and reported
// alongside the verdict without influencing it.
type SerializabilityChecker struct {
	validator *EndingValidator
	builder   *PrecedenceGraphBuilder
	detector  CycleDetector
}

func NewSerializabilityChecker() *SerializabilityChecker {
	return &SerializabilityChecker{
		validator: &EndingValidator{},
		builder:   &PrecedenceGraphBuilder{},
		detector:  &DFSCycleDetector{},
	}
}

func (c *SerializabilityChecker) Check(schedule Schedule) (AnalysisResult, error) {
	warnings, err := c.validator.Validate(schedule)
	if err != nil {
		return AnalysisResult{}, err
	}
	graph, err := c.builder.Build(schedule)
	if err != nil {
		return AnalysisResult{}, err
	}
	return AnalysisResult{
		Serializable: !c.detector.HasCycle(graph),
		Warnings:     warnings,
		Graph:        graph.Adjacency(),
	}, nil
}
