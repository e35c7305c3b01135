package runner

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/wfint/cloudinary-sync/internal/app/mocks"
	"github.com/wfint/cloudinary-sync/internal/app/models"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/errs"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		TaskStatusUpload: "UPL",
		TaskComplete:     "CPL",
		TaskError:        "ERR",
		MaxTasksPerRun:   100,
	}
}

func taskWithDocuments(id string, documentIDs ...string) *models.Task {
	documents := make([]*models.Document, 0, len(documentIDs))
	for _, documentID := range documentIDs {
		documents = append(documents, &models.Document{ID: documentID})
	}
	return &models.Task{ID: id, HasDocuments: len(documents) > 0, Documents: documents}
}

func TestTaskRunner_Run_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	mockAuth.EXPECT().
		GetSessionID(gomock.Any()).
		Return("", errs.ErrAuthFailed)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
}

func TestTaskRunner_Run_SearchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return(nil, errs.ErrRemoteRequest)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
}

func TestTaskRunner_Run_NoTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return([]*models.Task{}, nil)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitOK, code)
}

func TestTaskRunner_Run_FiltersTasksWithoutDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	tasks := []*models.Task{
		taskWithDocuments("task-1", "doc-1"),
		taskWithDocuments("task-2"),
		taskWithDocuments("task-3", "doc-2", "doc-3"),
		taskWithDocuments("task-4"),
		taskWithDocuments("task-5", "doc-4"),
	}

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return(tasks, nil)

	for _, id := range []string{"task-1", "task-3", "task-5"} {
		id := id
		mockProcessor.EXPECT().
			ProcessTaskDocuments(gomock.Any(), gomock.Any(), "session-123").
			DoAndReturn(func(_ context.Context, task *models.Task, _ string) string {
				assert.Equal(t, id, task.ID)
				return "CPL"
			})
		mockAPI.EXPECT().
			UpdateTaskStatus(gomock.Any(), id, "CPL").
			Return(200, nil)
	}

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitOK, code)
}

func TestTaskRunner_Run_TaskFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	task := taskWithDocuments("task-1", "doc-1")

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return([]*models.Task{task}, nil)
	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), task, "session-123").
		Return("ERR")
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-1", "ERR").
		Return(200, nil)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
}

func TestTaskRunner_Run_PanicInOneTaskDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	taskA := taskWithDocuments("task-a", "doc-1")
	taskB := taskWithDocuments("task-b", "doc-2")

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return([]*models.Task{taskA, taskB}, nil)

	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), taskA, "session-123").
		DoAndReturn(func(_ context.Context, _ *models.Task, _ string) string {
			panic("unexpected fault")
		})
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-a", "ERR").
		Return(200, nil)

	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), taskB, "session-123").
		Return("CPL")
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-b", "CPL").
		Return(200, nil)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
}

func TestTaskRunner_Run_StatusUpdateFailureCountsAsFailedTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	task := taskWithDocuments("task-1", "doc-1")

	mockAuth.EXPECT().GetSessionID(gomock.Any()).Return("session-123", nil)
	mockAPI.EXPECT().
		SearchTasks(gomock.Any(), "UPL", 100, true).
		Return([]*models.Task{task}, nil)
	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), task, "session-123").
		Return("CPL")
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-1", "CPL").
		Return(500, errs.ErrRemoteRequest)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
}

func TestTaskRunner_Run_Interrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockAuth.EXPECT().
		GetSessionID(gomock.Any()).
		Return("", context.Canceled)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	code := runner.Run(ctx)

	assert.Equal(t, ExitInterrupted, code)
}

func TestTaskRunner_ProcessTasks_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock_app.NewMockAuthenticator(ctrl)
	mockAPI := mock_app.NewMockWorkfrontAPI(ctrl)
	mockProcessor := mock_app.NewMockTaskProcessor(ctrl)

	taskA := taskWithDocuments("task-a", "doc-1", "doc-2")
	taskB := taskWithDocuments("task-b", "doc-3")

	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), taskA, "session-123").
		Return("CPL")
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-a", "CPL").
		Return(200, nil)

	mockProcessor.EXPECT().
		ProcessTaskDocuments(gomock.Any(), taskB, "session-123").
		Return("ERR")
	mockAPI.EXPECT().
		UpdateTaskStatus(gomock.Any(), "task-b", "ERR").
		Return(200, nil)

	runner := CreateTaskRunner(mockAuth, mockAPI, mockProcessor, testConfig())
	stats := runner.processTasks(context.Background(), []*models.Task{taskA, taskB}, "session-123")

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.SuccessfulTasks)
	assert.Equal(t, 1, stats.FailedTasks)
	assert.Equal(t, 3, stats.TotalDocuments)
}
