package runner

import (
	"context"

	"github.com/wfint/cloudinary-sync/internal/app"
	"github.com/wfint/cloudinary-sync/internal/app/models"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// TaskRunner drives one complete run: authenticate, find eligible tasks,
// process each one and persist its final status.
type TaskRunner struct {
	authenticator  app.Authenticator
	workfrontAPI   app.WorkfrontAPI
	processor      app.TaskProcessor
	uploadStatus   string
	completeStatus string
	errorStatus    string
	maxTasks       int
}

func CreateTaskRunner(authenticator app.Authenticator, workfrontAPI app.WorkfrontAPI, processor app.TaskProcessor, cfg *config.Config) *TaskRunner {
	return &TaskRunner{
		authenticator:  authenticator,
		workfrontAPI:   workfrontAPI,
		processor:      processor,
		uploadStatus:   cfg.TaskStatusUpload,
		completeStatus: cfg.TaskComplete,
		errorStatus:    cfg.TaskError,
		maxTasks:       cfg.MaxTasksPerRun,
	}
}

func (r *TaskRunner) Run(ctx context.Context) int {
	const funcName = "TaskRunner.Run"
	logger.Info("starting workfront to cloudinary document sync",
		zap.String("function", funcName),
		zap.String("upload_status", r.uploadStatus),
		zap.Int("max_tasks", r.maxTasks),
	)

	sessionID, err := r.authenticator.GetSessionID(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		logger.Error("authentication failed, aborting run",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return ExitFailure
	}

	tasks, err := r.workfrontAPI.SearchTasks(ctx, r.uploadStatus, r.maxTasks, true)
	if err != nil {
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		logger.Error("task search failed, aborting run",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return ExitFailure
	}

	if len(tasks) == 0 {
		logger.Info("no tasks found for processing",
			zap.String("function", funcName),
		)
		return ExitOK
	}

	eligible := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.HasDocuments {
			eligible = append(eligible, task)
		}
	}

	if skipped := len(tasks) - len(eligible); skipped > 0 {
		logger.Warn("tasks without documents will be skipped",
			zap.String("function", funcName),
			zap.Int("skipped", skipped),
		)
	}

	if len(eligible) == 0 {
		logger.Info("no tasks with documents to process",
			zap.String("function", funcName),
		)
		return ExitOK
	}

	stats := r.processTasks(ctx, eligible, sessionID)
	r.logSummary(stats)

	if ctx.Err() != nil {
		logger.Warn("run interrupted",
			zap.String("function", funcName),
		)
		return ExitInterrupted
	}
	if stats.FailedTasks > 0 {
		return ExitFailure
	}

	return ExitOK
}

func (r *TaskRunner) processTasks(ctx context.Context, tasks []*models.Task, sessionID string) *models.RunStats {
	const funcName = "TaskRunner.processTasks"

	stats := &models.RunStats{TotalTasks: len(tasks)}

	for i, task := range tasks {
		if ctx.Err() != nil {
			logger.Warn("stopping before remaining tasks",
				zap.String("function", funcName),
				zap.Int("remaining", len(tasks)-i),
			)
			break
		}

		logger.Info("processing task",
			zap.String("function", funcName),
			zap.Int("index", i+1),
			zap.Int("total", len(tasks)),
			zap.String("task_id", task.ID),
			zap.Int("documents", len(task.Documents)),
		)

		stats.TotalDocuments += len(task.Documents)

		if r.processOneTask(ctx, task, sessionID) {
			stats.SuccessfulTasks++
		} else {
			stats.FailedTasks++
		}
	}

	return stats
}

// processOneTask aggregates the task's documents and persists the final
// status. A panic inside the processing of one task is contained here so
// the rest of the run carries on.
func (r *TaskRunner) processOneTask(ctx context.Context, task *models.Task, sessionID string) (succeeded bool) {
	const funcName = "TaskRunner.processOneTask"

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("unexpected fault while processing task",
				zap.String("function", funcName),
				zap.String("task_id", task.ID),
				zap.Any("fault", rec),
			)
			r.markTaskFailed(ctx, task.ID)
			succeeded = false
		}
	}()

	finalStatus := r.processor.ProcessTaskDocuments(ctx, task, sessionID)

	if _, err := r.workfrontAPI.UpdateTaskStatus(ctx, task.ID, finalStatus); err != nil {
		logger.Error("failed to persist task status",
			zap.String("function", funcName),
			zap.String("task_id", task.ID),
			zap.String("status", finalStatus),
			zap.Error(err),
		)
		return false
	}

	return finalStatus == r.completeStatus
}

func (r *TaskRunner) markTaskFailed(ctx context.Context, taskID string) {
	const funcName = "TaskRunner.markTaskFailed"

	if _, err := r.workfrontAPI.UpdateTaskStatus(ctx, taskID, r.errorStatus); err != nil {
		logger.Error("failed to mark task as failed",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
	}
}

func (r *TaskRunner) logSummary(stats *models.RunStats) {
	logger.Info("run summary",
		zap.Int("total_tasks", stats.TotalTasks),
		zap.Int("successful_tasks", stats.SuccessfulTasks),
		zap.Int("failed_tasks", stats.FailedTasks),
		zap.Int("total_documents", stats.TotalDocuments),
	)
}
