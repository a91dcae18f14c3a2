package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidInventoryItemID = errors.New("invalid inventory item id")
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")

	ErrQuoteNotFound         = errors.New("quote not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")

	ErrAlreadyApproved    = errors.New("quote already approved")
	ErrAlreadyDeleted     = errors.New("quote already deleted")
	ErrAlreadyTerminal    = errors.New("quote is no longer pending")
	ErrDuplicateWorkOrder = errors.New("a work order already exists for this quote")

	ErrValidationFailed    = errors.New("quote validation failed")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrNoEligibleEquipment = errors.New("no eligible equipment for service")
	ErrNoEquipmentCreated  = errors.New("no equipment was provisioned")

	ErrConcurrentUpdate = errors.New("record changed concurrently, retry the operation")

	// ErrApprovalInProgress also matches ErrDuplicateWorkOrder: the lock holder is the request
	// creating the quote's work order.
	ErrApprovalInProgress error = approvalInProgressError{}
)

type approvalInProgressError struct{}

func (approvalInProgressError) Error() string {
	return "quote approval already in progress"
}

func (approvalInProgressError) Is(target error) bool {
	return target == ErrDuplicateWorkOrder
}

// ValidationError carries the eligibility rule that rejected a quote.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "quote validation failed: " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// InsufficientStockError names the item that could not cover a request.
// It matches both ErrInsufficientStock and ErrValidationFailed.
type InsufficientStockError struct {
	ItemID    int64
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	name := e.ItemName
	if name == "" {
		name = fmt.Sprintf("item %d", e.ItemID)
	}
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock || target == ErrValidationFailed
}
