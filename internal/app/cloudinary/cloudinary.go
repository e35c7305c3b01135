package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/wfint/cloudinary-sync/internal/app/models"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/errs"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

// Service uploads staged files to Cloudinary and hands back the durable
// secure URL the Workfront document gets linked to.
type Service struct {
	cld         *cloudinary.Cloudinary
	assetFolder string
}

func CreateService(cfg *config.Config) (*Service, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}

	return &Service{
		cld:         cld,
		assetFolder: cfg.CloudinaryAssetFolder,
	}, nil
}

func (s *Service) UploadFile(ctx context.Context, filePath string, publicID string, displayName string) (*models.UploadResult, error) {
	const funcName = "Service.UploadFile"
	logger.Debug("uploading file to cloudinary",
		zap.String("function", funcName),
		zap.String("file_path", filePath),
		zap.String("public_id", publicID),
	)

	resp, err := s.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		PublicID:     publicID,
		DisplayName:  displayName,
		AssetFolder:  s.assetFolder,
		ResourceType: "auto",
	})
	if err != nil {
		logger.Error("cloudinary upload failed",
			zap.String("function", funcName),
			zap.String("public_id", publicID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}

	if resp.Error.Message != "" {
		logger.Error("cloudinary rejected upload",
			zap.String("function", funcName),
			zap.String("public_id", publicID),
			zap.String("message", resp.Error.Message),
		)
		return nil, fmt.Errorf("%w: %s", errs.ErrUploadFailed, resp.Error.Message)
	}

	if resp.SecureURL == "" {
		return nil, fmt.Errorf("%w: empty secure_url in upload response", errs.ErrUploadFailed)
	}

	logger.Info("file uploaded successfully",
		zap.String("function", funcName),
		zap.String("public_id", publicID),
		zap.String("secure_url", resp.SecureURL),
	)

	return &models.UploadResult{
		PublicID:  resp.PublicID,
		SecureURL: resp.SecureURL,
	}, nil
}
