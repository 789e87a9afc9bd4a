package dto

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type RequestConnectionRequest struct {
	TargetID int64   `json:"target_id,string" binding:"required"`
	Message  *string `json:"message,omitempty" binding:"omitempty,max=500"`
}

type ConnectionResponse struct {
	ID          int64      `json:"id,string"`
	RequesterID int64      `json:"requester_id,string"`
	AddresseeID int64      `json:"addressee_id,string"`
	Status      string     `json:"status"`
	Message     *string    `json:"message,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	DeclinedAt  *time.Time `json:"declined_at,omitempty"`
}

func ToConnectionResponse(c *model.Connection) *ConnectionResponse {
	return &ConnectionResponse{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		AddresseeID: c.AddresseeID,
		Status:      string(c.Status),
		Message:     c.Message,
		RequestedAt: c.RequestedAt,
		AcceptedAt:  c.AcceptedAt,
		DeclinedAt:  c.DeclinedAt,
	}
}

// ConnectionStatusResponse describes the pair from the caller's side.
// Status is "none" when the users have no connection record.
type ConnectionStatusResponse struct {
	Status     string              `json:"status"`
	Direction  string              `json:"direction,omitempty"`
	Connection *ConnectionResponse `json:"connection,omitempty"`
}

func ToConnectionStatusResponse(actorID int64, c *model.Connection) ConnectionStatusResponse {
	if c == nil {
		return ConnectionStatusResponse{Status: "none"}
	}
	direction := "incoming"
	if c.RequesterID == actorID {
		direction = "outgoing"
	}
	return ConnectionStatusResponse{
		Status:     string(c.Status),
		Direction:  direction,
		Connection: ToConnectionResponse(c),
	}
}
