package entities

import "time"

// Client is the customer that owns equipment and work orders.
//
// Contact fields may change after a quote references the client; identity fields do not.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
