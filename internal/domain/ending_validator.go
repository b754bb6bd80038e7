package domain

import "fmt"

// TransactionEndState accumulates how a transaction terminates across the
// raw, unfiltered schedule.
type TransactionEndState struct {
	HasCommit   bool
	HasAbort    bool
	HasOtherOps bool
}

// EndingValidator flags transactions whose termination is structurally
// inconsistent: both committed and aborted, or never terminated at all while
// having issued data operations. Findings are advisory warnings and never
// change the serializability verdict.
type EndingValidator struct {
}

func (v *EndingValidator) Validate(schedule Schedule) ([]string, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	states := make(map[string]*TransactionEndState)
	var order []string
	for _, op := range schedule {
		state, seen := states[op.TransactionId]
		if !seen {
			state = &TransactionEndState{}
			states[op.TransactionId] = state
			order = append(order, op.TransactionId)
		}
		switch op.Kind {
		case Commit:
			state.HasCommit = true
		case Abort:
			state.HasAbort = true
		default:
			state.HasOtherOps = true
		}
	}

	warnings := []string{}
	for _, transactionId := range order {
		state := states[transactionId]
		if state.HasCommit && state.HasAbort {
			warnings = append(warnings, fmt.Sprintf("transaction %s both commits and aborts", transactionId))
		}
		if !state.HasCommit && !state.HasAbort && state.HasOtherOps {
			warnings = append(warnings, fmt.Sprintf("transaction %s never commits nor aborts", transactionId))
		}
	}
	return warnings, nil
}
