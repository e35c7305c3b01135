package app

import (
	"context"

	"github.com/wfint/cloudinary-sync/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type Authenticator interface {
	GetSessionID(ctx context.Context) (string, error)
}

type WorkfrontAPI interface {
	SearchTasks(ctx context.Context, status string, limit int, includeDocuments bool) ([]*models.Task, error)
	DownloadDocument(ctx context.Context, documentID string, sessionID string) ([]byte, error)
	UpdateDocument(ctx context.Context, documentID string, description string) (int, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status string) (int, error)
}

type AssetStore interface {
	UploadFile(ctx context.Context, filePath string, publicID string, displayName string) (*models.UploadResult, error)
}

type TaskProcessor interface {
	ProcessDocument(ctx context.Context, document *models.Document, sessionID string) (bool, string)
	ProcessTaskDocuments(ctx context.Context, task *models.Task, sessionID string) string
}
