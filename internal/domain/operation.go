package domain

import (
	"errors"
	"fmt"
)

type OperationKind string

const (
	Read   OperationKind = "R"
	Write  OperationKind = "W"
	Commit OperationKind = "C"
	Abort  OperationKind = "A"
)

var (
	ErrInvalidOperation = errors.New("invalid operation kind")
	ErrMissingDataItem  = errors.New("missing data item")
)

// Operation is one atomic event of a recorded schedule. The position of the
// operation inside its schedule is its only timestamp.
type Operation struct {
	TransactionId string
	Kind          OperationKind
	DataItem      string
}

func NewOperation(transactionId, kind, dataItem string) (Operation, error) {
	op := Operation{
		TransactionId: transactionId,
		Kind:          OperationKind(kind),
		DataItem:      dataItem,
	}
	if err := op.Validate(); err != nil {
		return Operation{}, err
	}
	return op, nil
}

func (o Operation) Validate() error {
	switch o.Kind {
	case Read, Write:
		if o.DataItem == "" {
			return fmt.Errorf("%w: %s operation of transaction %s", ErrMissingDataItem, o.Kind, o.TransactionId)
		}
		return nil
	case Commit, Abort:
		return nil
	default:
		return fmt.Errorf("%w: %q on transaction %s", ErrInvalidOperation, string(o.Kind), o.TransactionId)
	}
}

// IsDataOperation reports whether the operation touches a data item and can
// therefore participate in a conflict.
func (o Operation) IsDataOperation() bool {
	return o.Kind == Read || o.Kind == Write
}

// Schedule is an ordered sequence of operations issued by concurrent
// transactions. It is never mutated by the analysis components.
type Schedule []Operation

func (s Schedule) Validate() error {
	for _, op := range s {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AbortedTransactions returns the ids of every transaction that issued an
// Abort anywhere in the schedule.
func (s Schedule) AbortedTransactions() map[string]bool {
	aborted := make(map[string]bool)
	for _, op := range s {
		if op.Kind == Abort {
			aborted[op.TransactionId] = true
		}
	}
	return aborted
}
