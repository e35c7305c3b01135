package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestCreateService(t *testing.T) {
	cfg := &config.Config{
		CloudinaryCloudName:   "demo",
		CloudinaryAPIKey:      "key",
		CloudinaryAPISecret:   "secret",
		CloudinaryAssetFolder: "workfront",
	}

	service, err := CreateService(cfg)

	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.Equal(t, "workfront", service.assetFolder)
}
