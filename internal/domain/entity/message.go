package entity

// MessageType tags an in-app message for display grouping on the dashboard.
type MessageType string

const (
	MessageTypeOrder      MessageType = "order"
	MessageTypeClaim      MessageType = "claim"
	MessageTypeSuggestion MessageType = "suggestion"
)

// MessageStatus tracks whether the feriante has answered a message.
type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusResponded MessageStatus = "responded"
)

// InAppMessage is a customer message shown on the vendor dashboard.
// Read-only in the current scope; messages enter the system through seed data.
type InAppMessage struct {
	ID           string
	CustomerName string
	ProductName  string
	ProductPrice float64
	Type         MessageType
	Content      string
	Date         string
	Status       MessageStatus
}
