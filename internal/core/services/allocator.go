package services

import "github.com/google/uuid"

// newBookingID mints a time-ordered, globally unique booking identifier.
// Version 1 UUIDs keep creation order roughly sortable; if the node has
// no usable hardware address source the allocator falls back to a
// random version 4, which only gives up the time ordering.
func newBookingID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
