package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rl1809/seckill/internal/core/domain"
)

// TokenService issues and verifies purchase tokens. The token is a keyed
// hash of the item id under a process-wide secret, so a client that only
// knows the item id cannot forge one. Tokens carry no expiry; the sale
// window is re-checked at redemption time instead.
type TokenService struct {
	catalog *CatalogService
	secret  []byte
	now     func() time.Time
}

func NewTokenService(catalog *CatalogService, secret []byte) *TokenService {
	return &TokenService{
		catalog: catalog,
		secret:  secret,
		now:     time.Now,
	}
}

// IssueToken returns a token for the item if the sale window is open.
// Outside the window it returns a *domain.WindowError carrying now,
// start and end; for an unknown item it returns domain.ErrItemNotFound.
func (s *TokenService) IssueToken(ctx context.Context, itemID string) (*domain.PurchaseToken, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Before(item.StartTime) {
		return nil, &domain.WindowError{
			Reason:    domain.WindowBeforeStart,
			ItemID:    itemID,
			Now:       now,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		}
	}
	if now.After(item.EndTime) {
		return nil, &domain.WindowError{
			Reason:    domain.WindowAfterEnd,
			ItemID:    itemID,
			Now:       now,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		}
	}

	return &domain.PurchaseToken{ItemID: itemID, Value: s.Compute(itemID)}, nil
}

// Compute derives the opaque token value for an item. Deterministic for
// the lifetime of the secret; verification recomputes rather than stores.
func (s *TokenService) Compute(itemID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(itemID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a supplied token value in constant time.
func (s *TokenService) Verify(itemID, value string) bool {
	return hmac.Equal([]byte(s.Compute(itemID)), []byte(value))
}
