package order

type Status string

const (
	StatusPendingPayment   Status = "pending_payment"
	StatusPaid             Status = "paid"
	StatusPreparing        Status = "preparing"
	StatusReady            Status = "ready"
	StatusPickedUp         Status = "picked_up"
	StatusCancelledExpired Status = "cancelled_expired"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusPreparing, StatusReady, StatusPickedUp, StatusCancelledExpired:
		return true
	}
	return false
}
