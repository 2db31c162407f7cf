package model

import "time"

// CaseDocument is a piece of case paperwork stored in object storage.
// The row holds metadata only; content lives under StoragePath.
type CaseDocument struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
