package bookings

// PaymentStatus tracks the payment lifecycle of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// TicketStatus tracks the lifecycle of a ticket. Booked and Used are
// the active states: a seat holding a ticket in either state cannot be
// booked again for the same event.
type TicketStatus string

const (
	TicketBooked      TicketStatus = "Booked"
	TicketUsed        TicketStatus = "Used"
	TicketCancelled   TicketStatus = "Cancelled"
	TicketTransferred TicketStatus = "Transferred"
)

// activeTicketStatuses are the statuses that make a seat unavailable
// for its event. The ledger check in every booking transaction and the
// partial unique index on tickets both use this set.
var activeTicketStatuses = []TicketStatus{TicketBooked, TicketUsed}
