package notification

import "context"

// Notifier dispatches an out-of-band message to a student or artisan. Delivery
// is best effort: implementations log failures and never surface them, so a
// failed notification cannot fail the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, targetID, message string)
}

// NoopNotifier discards every notification. Useful in tests and local setups
// without push or mail credentials.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, targetID, message string) {}
