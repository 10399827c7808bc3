package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type ReviewService struct {
	repo ports.ReviewRepository
	now  func() time.Time
}

func NewReviewService(repo ports.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo, now: time.Now}
}

func (s *ReviewService) List(ctx context.Context, filter ports.ReviewFilter) ([]*domain.Review, error) {
	reviews, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*domain.Review, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return r, nil
}

// Submit stores a visitor review. New reviews always await validation.
func (s *ReviewService) Submit(ctx context.Context, pseudonym, comment string) (int64, error) {
	pseudonym = strings.TrimSpace(pseudonym)
	if pseudonym == "" || strings.TrimSpace(comment) == "" {
		return 0, fmt.Errorf("submit review: %w", domain.NewInputError("pseudonym and comment are required"))
	}

	id, err := s.repo.Create(ctx, &domain.Review{
		Pseudonym: pseudonym,
		Comment:   comment,
		Validated: false,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("submit review: %w", err)
	}
	return id, nil
}

func (s *ReviewService) EditComment(ctx context.Context, id int64, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("edit review: %w", domain.NewInputError("comment is required"))
	}
	if err := s.repo.UpdateComment(ctx, id, comment); err != nil {
		return fmt.Errorf("edit review %d: %w", id, err)
	}
	return nil
}

func (s *ReviewService) SetValidated(ctx context.Context, id int64, validated bool) error {
	if err := s.repo.SetValidated(ctx, id, validated); err != nil {
		return fmt.Errorf("validate review %d: %w", id, err)
	}
	return nil
}
