package model

import "time"

// Client is a person the firm represents. Email is unique among clients.
type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientInput carries the fields accepted on creation.
type ClientInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// ClientUpdate carries a partial update; nil fields are left untouched.
type ClientUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// ClientDetail is the single-client read projection: the row plus its
// cases and receipts, assembled at read time.
type ClientDetail struct {
	Client
	Cases    []ClientCase       `json:"cases"`
	Receipts []ReceiptWithNames `json:"receipts"`
}
