package models

// Task mirrors the fields of a Workfront task this job reads and writes.
type Task struct {
	ID           string      `json:"ID"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	HasDocuments bool        `json:"hasDocuments"`
	Documents    []*Document `json:"documents"`
}

type Document struct {
	ID          string `json:"ID"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UploadResult is the part of the asset store response the job consumes.
type UploadResult struct {
	PublicID  string
	SecureURL string
}

type RunStats struct {
	TotalTasks      int
	SuccessfulTasks int
	FailedTasks     int
	TotalDocuments  int
}
