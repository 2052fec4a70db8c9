package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/dto"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// ReviewHandler serves the list and create operations on any path.
type ReviewHandler struct {
	service *services.ReviewService
}

func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET with optional location, start_date and end_date filters.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	q := dto.ListReviewsQuery{
		Location:  c.Query("location"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	return c.Status(fiber.StatusOK).JSON(h.service.ListReviews(q))
}

// Create handles POST with a URL-encoded Location and ReviewBody. Client
// errors get a 400 with an empty body.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	req, err := parseCreateForm(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}

	review, err := h.service.CreateReview(req.Location, req.ReviewBody)
	if errors.Is(err, services.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}
	if err != nil {
		return err
	}

	slog.Info("review created", "review_id", review.ReviewId, "location", review.Location)
	return c.Status(fiber.StatusCreated).JSON(review)
}

// parseCreateForm decodes the raw body as a URL-encoded form whatever the
// Content-Type says. Decoding is lenient: pairs split on '&' only, a bad '%'
// escape stays literal, and the first non-blank value of a field wins.
func parseCreateForm(body []byte) (dto.CreateReviewRequest, error) {
	if !utf8.Valid(body) {
		return dto.CreateReviewRequest{}, errors.New("body is not valid UTF-8")
	}

	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.ParseBytes(body)

	var req dto.CreateReviewRequest
	args.VisitAll(func(key, value []byte) {
		if len(value) == 0 {
			return
		}
		switch string(key) {
		case "Location":
			if req.Location == "" {
				req.Location = strings.ToValidUTF8(string(value), "\uFFFD")
			}
		case "ReviewBody":
			if req.ReviewBody == "" {
				req.ReviewBody = strings.ToValidUTF8(string(value), "\uFFFD")
			}
		}
	})
	return req, nil
}

// MethodNotAllowed answers every method other than GET and POST.
func MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET, POST")
	return c.Status(fiber.StatusMethodNotAllowed).Send(nil)
}
