package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/wfint/cloudinary-sync/internal/app"
	"github.com/wfint/cloudinary-sync/internal/app/models"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/errs"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

// DocumentProcessor moves a single document from Workfront into the asset
// store and links the resulting URL back onto the document.
type DocumentProcessor struct {
	workfrontAPI   app.WorkfrontAPI
	assetStore     app.AssetStore
	completeStatus string
	errorStatus    string
	tempDir        string
}

func CreateDocumentProcessor(workfrontAPI app.WorkfrontAPI, assetStore app.AssetStore, cfg *config.Config, tempDir string) *DocumentProcessor {
	return &DocumentProcessor{
		workfrontAPI:   workfrontAPI,
		assetStore:     assetStore,
		completeStatus: cfg.TaskComplete,
		errorStatus:    cfg.TaskError,
		tempDir:        tempDir,
	}
}

func (p *DocumentProcessor) stageDocument(ctx context.Context, document *models.Document, sessionID string) (string, error) {
	content, err := p.workfrontAPI.DownloadDocument(ctx, document.ID, sessionID)
	if err != nil {
		return "", err
	}

	stagingFile, err := os.CreateTemp(p.tempDir, "wfdoc-*")
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}

	if _, err := stagingFile.Write(content); err != nil {
		stagingFile.Close()
		os.Remove(stagingFile.Name())
		return "", fmt.Errorf("write staging file: %w", err)
	}
	if err := stagingFile.Close(); err != nil {
		os.Remove(stagingFile.Name())
		return "", fmt.Errorf("close staging file: %w", err)
	}

	return stagingFile.Name(), nil
}

func (p *DocumentProcessor) removeStagingFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove staging file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// ProcessDocument runs download, upload and link for one document. Any
// failure along the way reports the error status; the staging file is
// removed on every path.
func (p *DocumentProcessor) ProcessDocument(ctx context.Context, document *models.Document, sessionID string) (bool, string) {
	const funcName = "DocumentProcessor.ProcessDocument"

	displayName := document.Name
	if displayName == "" {
		displayName = document.ID
	}

	logger.Info("processing document",
		zap.String("function", funcName),
		zap.String("document_id", document.ID),
		zap.String("document_name", displayName),
	)

	stagedPath, err := p.stageDocument(ctx, document, sessionID)
	if err != nil {
		logger.Error("failed to stage document",
			zap.String("function", funcName),
			zap.String("document_id", document.ID),
			zap.Error(err),
		)
		return false, p.errorStatus
	}
	defer p.removeStagingFile(stagedPath)

	result, err := p.assetStore.UploadFile(ctx, stagedPath, document.ID, displayName)
	if err != nil {
		logger.Error("failed to upload document",
			zap.String("function", funcName),
			zap.String("document_id", document.ID),
			zap.Error(err),
		)
		return false, p.errorStatus
	}

	if _, err := p.workfrontAPI.UpdateDocument(ctx, document.ID, result.SecureURL); err != nil {
		logger.Error("failed to link asset url to document",
			zap.String("function", funcName),
			zap.String("document_id", document.ID),
			zap.String("secure_url", result.SecureURL),
			zap.Error(err),
		)
		return false, p.errorStatus
	}

	logger.Info("document processed successfully",
		zap.String("function", funcName),
		zap.String("document_id", document.ID),
		zap.String("secure_url", result.SecureURL),
	)

	return true, p.completeStatus
}

// ProcessTaskDocuments processes every document of a task in order and
// reduces the outcomes: the complete status only when all of them
// succeeded. It does not persist the task status itself.
func (p *DocumentProcessor) ProcessTaskDocuments(ctx context.Context, task *models.Task, sessionID string) string {
	const funcName = "DocumentProcessor.ProcessTaskDocuments"

	if len(task.Documents) == 0 {
		logger.Warn("task has no documents to process",
			zap.String("function", funcName),
			zap.String("task_id", task.ID),
			zap.Error(errs.ErrNoDocuments),
		)
		return p.errorStatus
	}

	logger.Info("processing task documents",
		zap.String("function", funcName),
		zap.String("task_id", task.ID),
		zap.Int("documents", len(task.Documents)),
	)

	succeeded := 0
	for _, document := range task.Documents {
		ok, _ := p.ProcessDocument(ctx, document, sessionID)
		if ok {
			succeeded++
		}
	}

	if succeeded == len(task.Documents) {
		logger.Info("all documents processed successfully",
			zap.String("function", funcName),
			zap.String("task_id", task.ID),
		)
		return p.completeStatus
	}

	logger.Warn("task partially failed",
		zap.String("function", funcName),
		zap.String("task_id", task.ID),
		zap.Int("succeeded", succeeded),
		zap.Int("total", len(task.Documents)),
	)

	return p.errorStatus
}
