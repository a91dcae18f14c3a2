package interfaces

import "context"

//go:generate mockgen -source=approval_lock_interface.go -destination=mocks/approval_lock_interface_mock.go

// IApprovalLock is a short-lived advisory lock used to turn away a second approval of the
// same quote while the first is still running. It is not the consistency guard: the store's
// uniqueness on work_orders.quote_id is.
type IApprovalLock interface {
	// TryLock returns acquired=false when another holder owns key. release must be called
	// when acquired is true.
	TryLock(ctx context.Context, key string) (release func(context.Context), acquired bool, err error)
}
