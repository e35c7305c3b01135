package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/wfint/cloudinary-sync/internal/utils/validate"
)

const WorkfrontAPIVersion = "v19.0"

type Config struct {
	WorkfrontBaseURL      string
	WorkfrontAPIKey       string
	WorkfrontBase         string
	WorkfrontClientID     string
	WorkfrontClientSecret string
	WorkfrontCustomerID   string
	WorkfrontUserID       string
	WorkfrontPrivateKey   string

	CloudinaryCloudName   string
	CloudinaryAPIKey      string
	CloudinaryAPISecret   string
	CloudinaryAssetFolder string

	TaskStatusUpload string
	TaskComplete     string
	TaskError        string

	MaxTasksPerRun int
	LogMode        string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"WORKFRONT_BASE_URL",
		"WORKFRONT_API_KEY",
		"WORKFRONT_BASE",
		"WORKFRONT_CLIENT_ID",
		"WORKFRONT_CLIENT_SECRET",
		"WORKFRONT_CUSTOMER_ID",
		"WORKFRONT_USER_ID",
		"WORKFRONT_PRIVATE_KEY",
		"CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY",
		"CLOUDINARY_API_SECRET",
	})
	if err != nil {
		return err
	}

	return nil
}

func stringToInt(value string) int {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return number
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}

// WorkfrontAPIBase returns the versioned REST endpoint root.
func (c *Config) WorkfrontAPIBase() string {
	return fmt.Sprintf("%s/attask/api/%s", c.WorkfrontBaseURL, WorkfrontAPIVersion)
}

func LoadConfig(envFile string) (*Config, error) {
	err := godotenv.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	cfg := &Config{
		WorkfrontBaseURL:      os.Getenv("WORKFRONT_BASE_URL"),
		WorkfrontAPIKey:       os.Getenv("WORKFRONT_API_KEY"),
		WorkfrontBase:         os.Getenv("WORKFRONT_BASE"),
		WorkfrontClientID:     os.Getenv("WORKFRONT_CLIENT_ID"),
		WorkfrontClientSecret: os.Getenv("WORKFRONT_CLIENT_SECRET"),
		WorkfrontCustomerID:   os.Getenv("WORKFRONT_CUSTOMER_ID"),
		WorkfrontUserID:       os.Getenv("WORKFRONT_USER_ID"),
		WorkfrontPrivateKey:   os.Getenv("WORKFRONT_PRIVATE_KEY"),

		CloudinaryCloudName:   os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:      os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:   os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryAssetFolder: getEnvOrDefault("CLOUDINARY_ASSET_FOLDER", "workfront"),

		TaskStatusUpload: getEnvOrDefault("TASK_STATUS_UPLOAD", "UPL"),
		TaskComplete:     getEnvOrDefault("TASK_COMPLETE", "CPL"),
		TaskError:        getEnvOrDefault("TASK_ERROR", "ERR"),

		MaxTasksPerRun: stringToInt(getEnvOrDefault("MAX_TASKS_PER_RUN", "100")),
		LogMode:        getEnvOrDefault("LOG_MODE", "prod"),
	}

	if err := validate.ValidateMaxTasks(cfg.MaxTasksPerRun); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	for _, code := range []string{cfg.TaskStatusUpload, cfg.TaskComplete, cfg.TaskError} {
		if err := validate.ValidateStatusCode(code); err != nil {
			return nil, fmt.Errorf("LoadConfig: %w", err)
		}
	}

	return cfg, nil
}
