package model

import "time"

// Invoice is the fiscal document issued for a receipt.
type Invoice struct {
	ID            string     `json:"id"`
	ReceiptID     string     `json:"receipt_id"`
	InvoiceNumber string     `json:"invoice_number"`
	DueDate       *time.Time `json:"due_date"`
	TaxAmount     *float64   `json:"tax_amount"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// InvoiceInput carries the fields accepted on creation.
type InvoiceInput struct {
	ReceiptID     string     `json:"receipt_id"`
	InvoiceNumber string     `json:"invoice_number"`
	DueDate       *time.Time `json:"due_date"`
	TaxAmount     *float64   `json:"tax_amount"`
	TotalAmount   *float64   `json:"total_amount"`
	Status        *string    `json:"status"`
}

// InvoiceUpdate carries a partial update; nil fields are left untouched.
type InvoiceUpdate struct {
	DueDate     *time.Time `json:"due_date"`
	TaxAmount   *float64   `json:"tax_amount"`
	TotalAmount *float64   `json:"total_amount"`
	Status      *string    `json:"status"`
}
