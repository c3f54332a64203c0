package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/shared"
)

type LevelReviewHandler struct {
	reviewSvc   LevelReviewServiceInterface
	reviewerSvc ReviewerServiceInterface
}

func NewLevelReviewHandler(reviewSvc LevelReviewServiceInterface, reviewerSvc ReviewerServiceInterface) *LevelReviewHandler {
	return &LevelReviewHandler{reviewSvc: reviewSvc, reviewerSvc: reviewerSvc}
}

// @Summary Submit a review
// @Description Store reviewer feedback on a level request; an existing review by the same reviewer is overwritten
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewRequest body dto.SubmitReviewRequest true "Review details"
// @Success 201 {object} shared.Response{data=dto.LevelReviewResponse}
// @Router /api/v1/reviews [post]
func (h *LevelReviewHandler) SubmitReview(c *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if _, err := h.reviewerSvc.GetActiveReviewer(req.ReviewerDiscordID); err != nil {
		return err
	}

	review, err := h.reviewSvc.SubmitReview(&req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Review submitted", dto.NewLevelReviewResponse(review))
}

// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param level_id path int true "Level ID"
// @Param reviewer_id path int true "Reviewer Discord ID"
// @Success 200 {object} shared.Response{data=dto.LevelReviewResponse}
// @Router /api/v1/reviews/{level_id}/{reviewer_id} [get]
func (h *LevelReviewHandler) GetReview(c *fiber.Ctx) error {
	levelID, err := parseUintParam(c, "level_id")
	if err != nil {
		return err
	}
	reviewerID, err := parseUintParam(c, "reviewer_id")
	if err != nil {
		return err
	}

	review, err := h.reviewSvc.GetReview(levelID, reviewerID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelReviewResponse(review))
}

// @Summary Repoint a review at a new Discord message
// @Tags reviews
// @Accept json
// @Produce json
// @Param updateRequest body dto.UpdateReviewMessageRequest true "New message correlation"
// @Success 200 {object} shared.Response{data=dto.LevelReviewResponse}
// @Router /api/v1/reviews/message [put]
func (h *LevelReviewHandler) UpdateReviewMessage(c *fiber.Ctx) error {
	var req dto.UpdateReviewMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	review, err := h.reviewSvc.UpdateReviewMessage(&req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelReviewResponse(review))
}
