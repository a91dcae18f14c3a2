package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

type RestockRequest struct {
	Quantity json.Number `json:"quantity" binding:"required"`
}

func (r RestockRequest) ResolveQuantity() (int, error) {
	return ParseQuantity(r.Quantity.String())
}

// ParseQuantity reads a positive unit count from a body field or the ?quantity= query.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}
