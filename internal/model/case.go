package model

import "time"

// Case statuses accepted by the API.
const (
	CaseStatusOpen       = "Open"
	CaseStatusInProgress = "In-Progress"
	CaseStatusClosed     = "Closed"
)

// ValidCaseStatus reports whether s is one of the accepted case statuses.
func ValidCaseStatus(s string) bool {
	return s == CaseStatusOpen || s == CaseStatusInProgress || s == CaseStatusClosed
}

// Case is a legal matter owned by one lawyer and one client.
type Case struct {
	ID          string    `json:"id"`
	LawyerID    string    `json:"lawyer_id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"case_title"`
	Description *string   `json:"case_description"`
	Status      string    `json:"case_status"`
	OpenedDate  time.Time `json:"opened_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CaseSummary is the list projection with the owning client/lawyer names.
type CaseSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"case_title"`
	Description     *string   `json:"case_description"`
	Status          string    `json:"case_status"`
	OpenedDate      time.Time `json:"opened_date"`
	ClientFirstName string    `json:"client_first_name"`
	ClientLastName  string    `json:"client_last_name"`
	LawyerFirstName string    `json:"lawyer_first_name"`
	LawyerLastName  string    `json:"lawyer_last_name"`
}

// CaseDetail is the single-case projection: denormalized names plus the
// case's receipts.
type CaseDetail struct {
	Case
	ClientFullName string        `json:"client_full_name"`
	LawyerFullName string        `json:"lawyer_full_name"`
	Specialty      *string       `json:"specialty"`
	Receipts       []CaseReceipt `json:"receipts"`
}

// CaseReceipt is the trimmed receipt shape nested under a case.
type CaseReceipt struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod *string   `json:"payment_method"`
}

// ClientCase is a case nested under a client, with the lawyer's name.
type ClientCase struct {
	Case
	LawyerName string `json:"lawyer_name"`
}

// CaseFilter holds the recognized list filters. Nil fields are skipped.
type CaseFilter struct {
	Status   *string
	LawyerID *string
	ClientID *string
	Page     int
	Limit    int
}

// CaseInput carries the fields accepted on creation.
type CaseInput struct {
	LawyerID    string  `json:"lawyer_id"`
	ClientID    string  `json:"client_id"`
	Title       string  `json:"case_title"`
	Description *string `json:"case_description"`
}

// CaseUpdate carries a partial update; nil fields are left untouched.
// updated_at is stamped server-side on every update.
type CaseUpdate struct {
	Title       *string `json:"case_title"`
	Description *string `json:"case_description"`
	Status      *string `json:"case_status"`
}
