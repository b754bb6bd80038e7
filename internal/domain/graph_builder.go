package domain

// PrecedenceGraphBuilder turns a schedule into its precedence graph.
//
// Operations of aborted transactions never reach the graph: such a
// transaction contributes no edges and no node. Comparisons are quadratic
// over the remaining operations, which is fine for the human-scale schedules
// this system analyzes.
type PrecedenceGraphBuilder struct {
}

func (b *PrecedenceGraphBuilder) Build(schedule Schedule) (*PrecedenceGraph, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	aborted := schedule.AbortedTransactions()
	valid := validSubSchedule(schedule, aborted)

	graph := NewPrecedenceGraph()
	for _, op := range valid {
		if aborted[op.TransactionId] {
			continue
		}
		graph.AddNode(op.TransactionId)
	}

	for i := 0; i < len(valid); i++ {
		earlier := valid[i]
		if !earlier.IsDataOperation() {
			continue
		}
		for j := i + 1; j < len(valid); j++ {
			later := valid[j]
			if !later.IsDataOperation() {
				continue
			}
			if conflicts(earlier, later) {
				graph.AddEdge(earlier.TransactionId, later.TransactionId)
			}
		}
	}
	return graph, nil
}

// validSubSchedule drops every operation of an aborted transaction except the
// abort itself, preserving order.
func validSubSchedule(schedule Schedule, aborted map[string]bool) Schedule {
	valid := make(Schedule, 0, len(schedule))
	for _, op := range schedule {
		if aborted[op.TransactionId] && op.Kind != Abort {
			continue
		}
		valid = append(valid, op)
	}
	return valid
}

// conflicts reports whether two data operations from different transactions
// access the same data item with at least one write.
func conflicts(earlier, later Operation) bool {
	if earlier.TransactionId == later.TransactionId {
		return false
	}
	if earlier.DataItem == "" || earlier.DataItem != later.DataItem {
		return false
	}
	return earlier.Kind == Write || later.Kind == Write
}
