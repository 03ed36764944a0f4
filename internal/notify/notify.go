package notify

import "context"

// Event describes a single applicant-facing notification.
type Event struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers notification events. Delivery is best-effort from the
// caller's perspective; submission never fails because a notification did.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}
