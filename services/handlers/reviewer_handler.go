package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/shared"
)

type ReviewerHandler struct {
	reviewerSvc ReviewerServiceInterface
}

func NewReviewerHandler(reviewerSvc ReviewerServiceInterface) *ReviewerHandler {
	return &ReviewerHandler{reviewerSvc: reviewerSvc}
}

// @Summary Get a reviewer
// @Description Look up a roster entry; is_active narrows the match when supplied
// @Tags reviewers
// @Produce json
// @Param discord_id path int true "Reviewer Discord ID"
// @Param is_active query bool false "Only match reviewers in this active state"
// @Success 200 {object} shared.Response{data=dto.ReviewerResponse}
// @Router /api/v1/reviewers/{discord_id} [get]
func (h *ReviewerHandler) GetReviewer(c *fiber.Ctx) error {
	discordID, err := parseUintParam(c, "discord_id")
	if err != nil {
		return err
	}

	var activeFilter *bool
	if raw := c.Query("is_active"); raw != "" {
		active, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return shared.NewBadRequestError(parseErr, "invalid is_active")
		}
		activeFilter = &active
	}

	reviewer, err := h.reviewerSvc.GetReviewer(discordID, activeFilter)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewReviewerResponse(reviewer))
}

// @Summary Add a reviewer
// @Description Register a reviewer; reactivates a previously removed one
// @Tags reviewers
// @Accept json
// @Produce json
// @Param addRequest body dto.AddReviewerRequest true "Reviewer details"
// @Success 201 {object} shared.Response{data=dto.ReviewerResponse}
// @Router /api/v1/reviewers [post]
func (h *ReviewerHandler) AddReviewer(c *fiber.Ctx) error {
	var req dto.AddReviewerRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	reviewer, err := h.reviewerSvc.AddReviewer(req.DiscordID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Reviewer added", dto.NewReviewerResponse(reviewer))
}

// @Summary Remove a reviewer
// @Description Deactivate an active reviewer; their past reviews are kept
// @Tags reviewers
// @Produce json
// @Param discord_id path int true "Reviewer Discord ID"
// @Success 200 {object} shared.Response{data=dto.ReviewerResponse}
// @Router /api/v1/reviewers/{discord_id} [delete]
func (h *ReviewerHandler) RemoveReviewer(c *fiber.Ctx) error {
	discordID, err := parseUintParam(c, "discord_id")
	if err != nil {
		return err
	}

	reviewer, err := h.reviewerSvc.RemoveReviewer(discordID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewReviewerResponse(reviewer))
}
