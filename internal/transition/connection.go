package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

// RequestConnection decides a new connection request from actor to targetID.
// existing is any connection between the two users, in either direction.
// A declined row keeps blocking new requests until it is removed.
func RequestConnection(actor model.Actor, targetID int64, existing *model.Connection, message *string, now time.Time) Outcome[model.Connection] {
	if actor.ID == targetID {
		return deny[model.Connection](KindSelfReference)
	}
	if existing != nil {
		return denyf[model.Connection](KindAlreadyExists, "a connection already exists between these users")
	}
	return allow(model.Connection{
		RequesterID: actor.ID,
		AddresseeID: targetID,
		Status:      model.ConnectionStatusPending,
		Message:     message,
		RequestedAt: now,
	})
}

func AcceptConnection(conn model.Connection, actor model.Actor, now time.Time) Outcome[model.Connection] {
	return respond(conn, actor, model.ConnectionStatusAccepted, now)
}

func DeclineConnection(conn model.Connection, actor model.Actor, now time.Time) Outcome[model.Connection] {
	return respond(conn, actor, model.ConnectionStatusDeclined, now)
}

func respond(conn model.Connection, actor model.Actor, to model.ConnectionStatus, now time.Time) Outcome[model.Connection] {
	if actor.ID != conn.AddresseeID {
		return denyf[model.Connection](KindForbidden, "only the addressee can respond to a connection request")
	}
	if conn.Status != model.ConnectionStatusPending {
		return denyf[model.Connection](KindInvalidState, "connection request is not pending")
	}

	conn.Status = to
	switch to {
	case model.ConnectionStatusAccepted:
		conn.AcceptedAt = &now
	case model.ConnectionStatusDeclined:
		conn.DeclinedAt = &now
	}
	return allow(conn)
}

// RemoveConnection allows either party to delete an accepted connection.
func RemoveConnection(conn model.Connection, actor model.Actor) Outcome[model.Connection] {
	if !conn.Involves(actor.ID) {
		return denyf[model.Connection](KindForbidden, "not a party to this connection")
	}
	if conn.Status != model.ConnectionStatusAccepted {
		return denyf[model.Connection](KindInvalidState, "only accepted connections can be removed")
	}
	return allow(conn)
}
