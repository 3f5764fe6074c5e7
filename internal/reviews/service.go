package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrIncomplete = errors.New("review form incomplete")

// Submitter receives accepted reviews.
type Submitter interface {
	SubmitReview(ctx context.Context, review Review) error
}

// NoopSubmitter accepts reviews without side effects.
type NoopSubmitter struct{}

func (NoopSubmitter) SubmitReview(ctx context.Context, review Review) error {
	return ctx.Err()
}

type Service struct {
	submitter Submitter
	location  *time.Location
	now       func() time.Time
}

func NewService(submitter Submitter, location *time.Location) *Service {
	if submitter == nil {
		submitter = NoopSubmitter{}
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		submitter: submitter,
		location:  location,
		now:       time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, form Form) (Review, error) {
	if !form.CanSubmit() {
		return Review{}, ErrIncomplete
	}

	review := Review{
		ID:          primitive.NewObjectID().Hex(),
		BotName:     strings.TrimSpace(form.BotName),
		Link:        strings.TrimSpace(form.Link),
		Body:        strings.TrimSpace(form.Body),
		Rating:      form.Rating,
		SubmittedAt: s.now().In(s.location),
	}

	if err := s.submitter.SubmitReview(ctx, review); err != nil {
		return Review{}, fmt.Errorf("submit review: %w", err)
	}
	return review, nil
}
