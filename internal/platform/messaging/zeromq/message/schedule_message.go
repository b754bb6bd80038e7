package message

import "SchedCheck/internal/domain"

type OperationMessage struct {
	TransactionId string `json:"transaction_id"`
	Kind          string `json:"kind"`
	DataItem      string `json:"data_item,omitempty"`
}

// ScheduleMessage carries a complete recorded schedule from a recorder to the
// analyzers. Operations are in recording order, which is the only
// happens-before information the analyzer gets.
type ScheduleMessage struct {
	ScheduleId string             `json:"schedule_id"`
	Operations []OperationMessage `json:"operations"`
	Topic      string
}

func ScheduleMessageFrom(scheduleId string, schedule domain.Schedule) ScheduleMessage {
	operations := make([]OperationMessage, 0, len(schedule))
	for _, op := range schedule {
		operations = append(operations, OperationMessage{
			TransactionId: op.TransactionId,
			Kind:          string(op.Kind),
			DataItem:      op.DataItem,
		})
	}
	return ScheduleMessage{
		ScheduleId: scheduleId,
		Operations: operations,
	}
}
