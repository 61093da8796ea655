package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps refresh tokens in Redis so they can be revoked on
// logout before their expiry.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

type refreshTokenRecord struct {
	UserID string `json:"user_id"`
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenRecord{UserID: userID.String()})
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken returns the user a refresh token was issued to.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return uuid.Nil, fmt.Errorf("refresh token not found")
	}

	var record refreshTokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return uuid.Nil, fmt.Errorf("unmarshal token data: %w", err)
	}

	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id in token data")
	}
	return userID, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
