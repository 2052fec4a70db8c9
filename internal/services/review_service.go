package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/dto"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/locations"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/store"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/timestamp"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrValidation      = errors.New("invalid review")
	ErrInvalidLocation = fmt.Errorf("%w: location is missing or not allowed", ErrValidation)
	ErrEmptyReviewBody = fmt.Errorf("%w: review body is empty", ErrValidation)
	ErrPersistence     = errors.New("failed to save review")
)

// ReviewStore is the storage the service reads from and appends to.
type ReviewStore interface {
	Snapshot() []store.Entry
	Append(r models.Review) error
	Len() int
}

// Scorer computes polarity scores for review text.
type Scorer interface {
	PolarityScores(text string) models.Sentiment
}

type ReviewService struct {
	store    ReviewStore
	scorer   Scorer
	clock    clockwork.Clock
	validate *validator.Validate
}

func NewReviewService(st ReviewStore, scorer Scorer, clock clockwork.Clock) *ReviewService {
	return &ReviewService{store: st, scorer: scorer, clock: clock, validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegisterValidation(v, "allowed_location", func(fl validator.FieldLevel) bool {
		return locations.Allowed(fl.Field().String())
	})
	return v
}

// mustRegisterValidation panics when tag cannot be registered. A missing
// custom tag would otherwise turn every create into a validation failure.
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// ListReviews returns stored reviews in insertion order, each annotated with
// freshly computed sentiment, filtered by q.
//
// The location filter only applies to allow-listed locations; anything else
// leaves all locations in. Date bounds are exclusive and a bound that does not
// parse is ignored. Reviews whose own timestamp does not parse never match a
// date filter.
func (s *ReviewService) ListReviews(q dto.ListReviewsQuery) []models.AnnotatedReview {
	entries := s.store.Snapshot()

	annotated := make([]models.AnnotatedReview, len(entries))
	for i, e := range entries {
		annotated[i] = models.AnnotatedReview{
			Review:    e.Review,
			Sentiment: s.scorer.PolarityScores(e.ReviewBody),
		}
	}

	byLocation := q.Location != "" && locations.Allowed(q.Location)
	start, hasStart := timestamp.Normalize(q.StartDate)
	end, hasEnd := timestamp.Normalize(q.EndDate)

	out := make([]models.AnnotatedReview, 0, len(annotated))
	for i, r := range annotated {
		if byLocation && r.Location != q.Location {
			continue
		}
		if !inRange(entries[i], start, hasStart, end, hasEnd) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func inRange(e store.Entry, start time.Time, hasStart bool, end time.Time, hasEnd bool) bool {
	switch {
	case hasStart && hasEnd:
		return e.Dated && e.At.After(start) && e.At.Before(end)
	case hasStart:
		return e.Dated && e.At.After(start)
	case hasEnd:
		return e.Dated && e.At.Before(end)
	default:
		return true
	}
}

// CreateReview validates and stores a new review stamped with the current
// time. The returned review carries no sentiment.
func (s *ReviewService) CreateReview(location, body string) (*models.Review, error) {
	if err := s.validate.Var(location, "required,allowed_location"); err != nil {
		return nil, ErrInvalidLocation
	}
	if err := s.validate.Var(body, "required"); err != nil {
		return nil, ErrEmptyReviewBody
	}

	review := models.Review{
		ReviewId:   uuid.NewString(),
		Location:   location,
		Timestamp:  timestamp.Format(s.clock.Now()),
		ReviewBody: body,
	}

	if err := s.store.Append(review); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return &review, nil
}

// Count returns the number of stored reviews.
func (s *ReviewService) Count() int {
	return s.store.Len()
}
