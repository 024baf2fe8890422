package shopping

import (
	"github.com/google/uuid"
)

// CartOwner identifies who a cart belongs to: an authenticated user or an
// anonymous session. Exactly one of the two is set; the zero value means
// no resolvable owner. User and session carts are never merged implicitly.
type CartOwner struct {
	userID    uuid.UUID
	sessionID string
}

// UserOwner returns the owner key for an authenticated user
func UserOwner(userID uuid.UUID) CartOwner {
	return CartOwner{userID: userID}
}

// SessionOwner returns the owner key for an anonymous session token
func SessionOwner(sessionID string) CartOwner {
	return CartOwner{sessionID: sessionID}
}

// IsUser reports whether the owner is an authenticated user
func (o CartOwner) IsUser() bool {
	return o.userID != uuid.Nil
}

// IsSession reports whether the owner is an anonymous session
func (o CartOwner) IsSession() bool {
	return o.userID == uuid.Nil && o.sessionID != ""
}

// IsZero reports whether no owner could be resolved
func (o CartOwner) IsZero() bool {
	return o.userID == uuid.Nil && o.sessionID == ""
}

// UserID returns the owning user ID, valid only when IsUser is true
func (o CartOwner) UserID() uuid.UUID {
	return o.userID
}

// SessionID returns the owning session token, valid only when IsSession is true
func (o CartOwner) SessionID() string {
	return o.sessionID
}

// String renders the owner key for logging
func (o CartOwner) String() string {
	switch {
	case o.IsUser():
		return "user:" + o.userID.String()
	case o.IsSession():
		return "session:" + o.sessionID
	default:
		return "none"
	}
}
