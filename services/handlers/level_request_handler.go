package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/shared"
)

type LevelRequestHandler struct {
	requestSvc LevelRequestServiceInterface
}

func NewLevelRequestHandler(requestSvc LevelRequestServiceInterface) *LevelRequestHandler {
	return &LevelRequestHandler{requestSvc: requestSvc}
}

// @Summary Create a level request
// @Description Submit a level for rating consideration
// @Tags requests
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateLevelRequestRequest true "Level request details"
// @Success 201 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests [post]
func (h *LevelRequestHandler) CreateLevelRequest(c *fiber.Ctx) error {
	var req dto.CreateLevelRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	request, err := h.requestSvc.CreateLevelRequest(&req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Level request created", dto.NewLevelRequestResponse(request))
}

// @Summary Get a level request
// @Tags requests
// @Produce json
// @Param level_id path int true "Level ID"
// @Param has_requested_feedback query bool false "Only match requests with this feedback flag"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests/{level_id} [get]
func (h *LevelRequestHandler) GetLevelRequest(c *fiber.Ctx) error {
	levelID, err := parseUintParam(c, "level_id")
	if err != nil {
		return err
	}

	var request *model.LevelRequest
	if raw := c.Query("has_requested_feedback"); raw != "" {
		filter, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return shared.NewBadRequestError(parseErr, "invalid has_requested_feedback")
		}
		request, err = h.requestSvc.GetLevelRequest(levelID, filter)
	} else {
		request, err = h.requestSvc.GetLevelRequest(levelID)
	}
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

// @Summary Update a level request
// @Description Partially update a stored level request
// @Tags requests
// @Accept json
// @Produce json
// @Param updateRequest body dto.UpdateLevelRequestRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests [patch]
func (h *LevelRequestHandler) UpdateLevelRequest(c *fiber.Ctx) error {
	var req dto.UpdateLevelRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	request, err := h.requestSvc.UpdateLevelRequest(&req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

// @Summary Attach the Discord message to a request
// @Tags requests
// @Accept json
// @Produce json
// @Param attachRequest body dto.AttachMessageRequest true "Message correlation"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests/message [put]
func (h *LevelRequestHandler) AttachMessage(c *fiber.Ctx) error {
	var req dto.AttachMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	request, err := h.requestSvc.AttachMessage(&req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

// @Summary Attach the feedback thread to a request
// @Tags requests
// @Accept json
// @Produce json
// @Param attachRequest body dto.AttachThreadRequest true "Thread correlation"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests/thread [put]
func (h *LevelRequestHandler) AttachThread(c *fiber.Ctx) error {
	var req dto.AttachThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	request, err := h.requestSvc.AttachThread(&req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

// @Summary Delete a level request
// @Description Remove a request and return the removed record
// @Tags requests
// @Produce json
// @Param level_id path int true "Level ID"
// @Success 200 {object} shared.Response{data=dto.LevelRequestResponse}
// @Router /api/v1/requests/{level_id} [delete]
func (h *LevelRequestHandler) DeleteLevelRequest(c *fiber.Ctx) error {
	levelID, err := parseUintParam(c, "level_id")
	if err != nil {
		return err
	}

	request, err := h.requestSvc.DeleteLevelRequest(levelID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.NewLevelRequestResponse(request))
}

func parseUintParam(c *fiber.Ctx, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, shared.NewBadRequestError(err, "invalid "+name)
	}
	return value, nil
}
