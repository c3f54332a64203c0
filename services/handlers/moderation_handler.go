package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/shared"
)

type ModerationHandler struct {
	moderationSvc ModerationServiceInterface
}

func NewModerationHandler(moderationSvc ModerationServiceInterface) *ModerationHandler {
	return &ModerationHandler{moderationSvc: moderationSvc}
}

// @Summary Send a level
// @Description Record a moderation decision and forward rateable ones to the GD servers
// @Tags moderation
// @Accept json
// @Produce json
// @Param sendRequest body dto.SendLevelRequest true "Decision details"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/moderation/send [post]
func (h *ModerationHandler) SendLevel(c *fiber.Ctx) error {
	var req dto.SendLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	request, err := h.moderationSvc.SendLevel(&req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

// @Summary Get a moderation decision
// @Tags moderation
// @Produce json
// @Param level_id path int true "Level ID"
// @Success 200 {object} shared.Response{data=model.ModerationDecision}
// @Router /api/v1/moderation/{level_id} [get]
func (h *ModerationHandler) GetDecision(c *fiber.Ctx) error {
	levelID, err := parseUintParam(c, "level_id")
	if err != nil {
		return err
	}

	decision, err := h.moderationSvc.GetDecision(levelID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, decision)
}
