package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/shared"
)

type RequestConfigHandler struct {
	configSvc RequestConfigServiceInterface
}

func NewRequestConfigHandler(configSvc RequestConfigServiceInterface) *RequestConfigHandler {
	return &RequestConfigHandler{configSvc: configSvc}
}

// @Summary Get request configuration
// @Tags config
// @Produce json
// @Success 200 {object} shared.Response{data=dto.RequestConfigResponse}
// @Router /api/v1/config [get]
func (h *RequestConfigHandler) GetConfig(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.configResponse())
}

// @Summary Update request configuration
// @Description Partially update the cooldown and enable flags
// @Tags config
// @Accept json
// @Produce json
// @Param updateRequest body dto.UpdateRequestConfigRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.RequestConfigResponse}
// @Router /api/v1/config [patch]
func (h *RequestConfigHandler) UpdateConfig(c *fiber.Ctx) error {
	var req dto.UpdateRequestConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if req.CooldownMinutes != nil {
		h.configSvc.SetCooldown(*req.CooldownMinutes)
	}
	if req.EnableRequests != nil {
		h.configSvc.SetRequestsEnabled(*req.EnableRequests)
	}
	if req.EnableGDRequests != nil {
		h.configSvc.SetGDRequestsEnabled(*req.EnableGDRequests)
	}

	return shared.ResponseOK(c, h.configResponse())
}

func (h *RequestConfigHandler) configResponse() *dto.RequestConfigResponse {
	return &dto.RequestConfigResponse{
		CooldownMinutes:  int64(h.configSvc.Cooldown().Minutes()),
		EnableRequests:   h.configSvc.RequestsEnabled(),
		EnableGDRequests: h.configSvc.GDRequestsEnabled(),
	}
}
