package model

import "time"

// Receipt is a payment received from a client, optionally tied to a case.
type Receipt struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	LawyerID      string    `json:"lawyer_id"`
	CaseID        *string   `json:"case_id"`
	Amount        float64   `json:"amount"`
	Concept       string    `json:"concept"`
	PaymentMethod *string   `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

// ReceiptWithNames is the read projection with the related display names.
// ClientName/LawyerName are filled depending on the listing; CaseTitle is
// present only on single-receipt reads.
type ReceiptWithNames struct {
	Receipt
	ClientName string  `json:"client_name,omitempty"`
	LawyerName string  `json:"lawyer_name,omitempty"`
	CaseTitle  *string `json:"case_title,omitempty"`
}

// ReceiptInput carries the fields accepted on creation. Amount is a
// pointer so a missing field is distinguishable from zero.
type ReceiptInput struct {
	ClientID      string   `json:"client_id"`
	LawyerID      string   `json:"lawyer_id"`
	CaseID        *string  `json:"case_id"`
	Amount        *float64 `json:"amount"`
	Concept       string   `json:"concept"`
	PaymentMethod *string  `json:"payment_method"`
}

// ReceiptUpdate carries a partial update; nil fields are left untouched.
type ReceiptUpdate struct {
	Amount        *float64   `json:"amount"`
	Concept       *string    `json:"concept"`
	PaymentMethod *string    `json:"payment_method"`
	PaymentDate   *time.Time `json:"payment_date"`
}
