package domain

// Actor describes the caller of a lifecycle operation: either a specific
// customer or the admin capability. Supplied by the auth middleware,
// treated as opaque by the core.
type Actor struct {
	CustomerID int64
	Admin      bool
}

// CustomerActor возвращает актора-клиента
func CustomerActor(customerID int64) Actor {
	return Actor{CustomerID: customerID}
}

// AdminActor возвращает актора с правами администратора
func AdminActor() Actor {
	return Actor{Admin: true}
}

// Owns reports whether the actor is the customer owning the given reservation.
// Admin does not "own" reservations; admin rights are checked separately.
func (a Actor) Owns(r *Reservation) bool {
	return !a.Admin && a.CustomerID == r.CustomerID
}
