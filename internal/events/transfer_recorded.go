package events

import "time"

const TransferLifecycleTopic = "hr.transfer.lifecycle.v1"

type TransferRecordedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	TransferID  string    `json:"transfer_id"`
	OrderNumber string    `json:"order_number"`
	EmployeeID  string    `json:"employee_id"`
	FromCity    string    `json:"from_city"`
	ToCity      string    `json:"to_city"`
	OccurredAt  time.Time `json:"occurred_at"`
}
