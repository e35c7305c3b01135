package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/errs"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	// Workfront expects short-lived assertions; three minutes is typical.
	assertionLifetime = 3 * time.Minute
	exchangeTimeout   = 30 * time.Second
)

// JWTAuthenticator exchanges a signed RS256 assertion for a Workfront session ID.
type JWTAuthenticator struct {
	clientID     string
	clientSecret string
	customerID   string
	userID       string
	privateKey   string
	exchangeURL  string
	client       *http.Client
}

func CreateJWTAuthenticator(cfg *config.Config) *JWTAuthenticator {
	return &JWTAuthenticator{
		clientID:     cfg.WorkfrontClientID,
		clientSecret: cfg.WorkfrontClientSecret,
		customerID:   cfg.WorkfrontCustomerID,
		userID:       cfg.WorkfrontUserID,
		privateKey:   cfg.WorkfrontPrivateKey,
		exchangeURL:  fmt.Sprintf("https://%s.my.workfront.com/integrations/oauth2/api/v1/jwt/exchange", cfg.WorkfrontBase),
		client:       &http.Client{Timeout: exchangeTimeout},
	}
}

func (a *JWTAuthenticator) signAssertion() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(a.privateKey))
	if err != nil {
		return "", fmt.Errorf("parse private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": a.customerID,
		"sub": a.userID,
		"exp": time.Now().Add(assertionLifetime).Unix(),
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}

	return signed, nil
}

func (a *JWTAuthenticator) GetSessionID(ctx context.Context) (string, error) {
	const funcName = "JWTAuthenticator.GetSessionID"
	logger.Debug("creating jwt assertion for workfront authentication",
		zap.String("function", funcName),
	)

	assertion, err := a.signAssertion()
	if err != nil {
		logger.Error("failed to sign jwt assertion",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", errs.ErrAuthFailed, err)
	}

	form := url.Values{}
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)
	form.Set("jwt_token", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.exchangeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.Info("requesting workfront oauth session id",
		zap.String("function", funcName),
	)

	resp, err := a.client.Do(req)
	if err != nil {
		logger.Error("jwt exchange request failed",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", errs.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("jwt exchange rejected",
			zap.String("function", funcName),
			zap.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: exchange returned status %d", errs.ErrAuthFailed, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode exchange response: %v", errs.ErrAuthFailed, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token in exchange response", errs.ErrAuthFailed)
	}

	logger.Info("workfront session id retrieved successfully",
		zap.String("function", funcName),
	)

	return payload.AccessToken, nil
}
