package model

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
)

type Connection struct {
	ID          int64            `json:"id"`
	RequesterID int64            `json:"requester_id"`
	AddresseeID int64            `json:"addressee_id"`
	Status      ConnectionStatus `json:"status"`
	Message     *string          `json:"message,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
	DeclinedAt  *time.Time       `json:"declined_at,omitempty"`
}

// Involves reports whether userID is either party of the connection.
func (c *Connection) Involves(userID int64) bool {
	return c.RequesterID == userID || c.AddresseeID == userID
}

// Other returns the id of the party that is not userID.
func (c *Connection) Other(userID int64) int64 {
	if c.RequesterID == userID {
		return c.AddresseeID
	}
	return c.RequesterID
}
