package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ParseID reads a positive numeric path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ApproveQuoteRequest accepts user_id as a JSON number or a numeric string.
type ApproveQuoteRequest struct {
	UserID json.Number `json:"user_id" binding:"required"`
}

func (r ApproveQuoteRequest) ResolveUserID() (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.UserID.String()), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}

func (r RejectQuoteRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
