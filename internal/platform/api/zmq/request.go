package zmq

type OperationRequest struct {
	TransactionId string `json:"transaction_id"`
	Kind          string `json:"kind"`
	DataItem      string `json:"data_item,omitempty"`
}

type ApiRequest struct {
	Action     string             `json:"action,omitempty"`
	ScheduleId string             `json:"schedule_id,omitempty"`
	Operations []OperationRequest `json:"operations,omitempty"`
	ReportId   string             `json:"report_id,omitempty"`
}

type ApiResponse struct {
	Report  ReportResponse `json:"report"`
	Success bool           `json:"success,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type ReportResponse struct {
	Id           string              `json:"id,omitempty"`
	ScheduleId   string              `json:"schedule_id,omitempty"`
	Serializable bool                `json:"serializable"`
	Warnings     []string            `json:"warnings,omitempty"`
	Graph        map[string][]string `json:"graph,omitempty"`
}
