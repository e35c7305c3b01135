package validate

import (
	"strings"

	"github.com/wfint/cloudinary-sync/internal/utils/errs"
)

const minTasksPerRun = 1

func ValidateMaxTasks(maxTasks int) error {
	if maxTasks < minTasksPerRun {
		return errs.ErrInvalidMaxTasks
	}

	return nil
}

func ValidateStatusCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.ErrEmptyStatusCode
	}

	return nil
}
