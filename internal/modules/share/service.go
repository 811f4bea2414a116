package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"secondbrain/internal/domain"
	"secondbrain/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	links    ShareLinkRepositoryInterface
	contents ContentReader
	ttl      time.Duration
}

func NewService(links ShareLinkRepositoryInterface, contents ContentReader, ttl time.Duration) *Service {
	return &Service{
		links:    links,
		contents: contents,
		ttl:      ttl,
	}
}

// Create mints a share link for an existing content record. Tokens are
// 128 bits from crypto/rand, hex-encoded, immutable once stored.
func (s *Service) Create(ctx context.Context, contentID int64) (*domain.ShareLink, error) {
	if _, err := s.contents.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	expiresAt := time.Now().Add(s.ttl)

	// One retry on a token collision. The unique index makes the
	// second insert authoritative either way.
	for attempt := 0; attempt < 2; attempt++ {
		token, err := generateShareToken()
		if err != nil {
			return nil, err
		}

		link := &domain.ShareLink{
			ContentID: contentID,
			Token:     token,
			ExpiresAt: &expiresAt,
		}
		err = s.links.Create(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrDuplicateToken) {
			return nil, err
		}
	}
	return nil, repository.ErrDuplicateToken
}

// Resolve returns the content behind a token. Unknown and expired
// tokens are indistinguishable to the caller; the expired case is only
// logged. No ownership check: anyone holding the token may read.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Content, *domain.ShareLink, error) {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrShareNotFound
		}
		return nil, nil, err
	}

	if link.Expired(time.Now()) {
		log.Printf("share resolve rejected: token for content %d expired at %s", link.ContentID, link.ExpiresAt)
		return nil, nil, ErrShareNotFound
	}

	content, err := s.contents.GetByID(ctx, link.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrShareNotFound
		}
		return nil, nil, err
	}

	return content, link, nil
}

func generateShareToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
