package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"recallhub/internal/application/carmodel/dto"
	"recallhub/internal/application/carmodel/usecases"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/utils"
)

type CarModelHandler struct {
	createCarModelUC   usecases.CreateCarModelExecutor
	getCarModelUC      usecases.GetCarModelExecutor
	listCarModelsUC    usecases.ListCarModelsExecutor
	updateCarModelUC   usecases.UpdateCarModelExecutor
	changeCarModelIDUC usecases.ChangeCarModelIDExecutor
	deleteCarModelUC   usecases.DeleteCarModelExecutor
	logger             logger.Interface
}

func NewCarModelHandler(
	createCarModelUC usecases.CreateCarModelExecutor,
	getCarModelUC usecases.GetCarModelExecutor,
	listCarModelsUC usecases.ListCarModelsExecutor,
	updateCarModelUC usecases.UpdateCarModelExecutor,
	changeCarModelIDUC usecases.ChangeCarModelIDExecutor,
	deleteCarModelUC usecases.DeleteCarModelExecutor,
) *CarModelHandler {
	return &CarModelHandler{
		createCarModelUC:   createCarModelUC,
		getCarModelUC:      getCarModelUC,
		listCarModelsUC:    listCarModelsUC,
		updateCarModelUC:   updateCarModelUC,
		changeCarModelIDUC: changeCarModelIDUC,
		deleteCarModelUC:   deleteCarModelUC,
		logger:             logger.NewLogger(),
	}
}

type CreateCarModelRequest struct {
	MakerID   uint    `json:"maker_id" binding:"required"`
	ModelName string  `json:"model_name" binding:"required"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// UpdateCarModelRequest carries dates only when set_window is true; a true
// flag with null dates clears the corresponding production-window bound.
type UpdateCarModelRequest struct {
	ModelName *string `json:"model_name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	SetWindow bool    `json:"set_window"`
}

type ChangeCarModelIDRequest struct {
	NewModelID uint `json:"new_model_id" binding:"required"`
}

func (h *CarModelHandler) CreateCarModel(c *gin.Context) {
	var req CreateCarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create car model", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCarModelCommand{
		MakerID:   req.MakerID,
		ModelName: req.ModelName,
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := h.createCarModelUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Car model created successfully")
}

func (h *CarModelHandler) GetCarModel(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCarModelUC.Execute(c.Request.Context(), usecases.GetCarModelQuery{ModelID: modelID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CarModelHandler) ListCarModels(c *gin.Context) {
	query := usecases.ListCarModelsQuery{}

	if makerIDStr := c.Query("maker_id"); makerIDStr != "" {
		makerID, err := strconv.ParseUint(makerIDStr, 10, 64)
		if err != nil || makerID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid maker_id parameter"))
			return
		}
		id := uint(makerID)
		query.MakerID = &id
	}
	if name := c.Query("name"); name != "" {
		query.Name = &name
	}

	result, err := h.listCarModelsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Models, result.Total)
}

func (h *CarModelHandler) UpdateCarModel(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update car model",
			"model_id", modelID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCarModelCommand{
		ModelID:   modelID,
		ModelName: req.ModelName,
		SetWindow: req.SetWindow,
	}

	if req.SetWindow {
		cmd.StartDate, err = parseOptionalDate(req.StartDate, "start_date")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.EndDate, err = parseOptionalDate(req.EndDate, "end_date")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.updateCarModelUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car model updated successfully", result)
}

func (h *CarModelHandler) ChangeCarModelID(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeCarModelIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change car model id",
			"model_id", modelID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeCarModelIDCommand{
		ModelID:    modelID,
		NewModelID: req.NewModelID,
	}

	result, err := h.changeCarModelIDUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car model ID changed successfully", result)
}

func (h *CarModelHandler) DeleteCarModel(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCarModelUC.Execute(c.Request.Context(), usecases.DeleteCarModelCommand{ModelID: modelID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car model deleted successfully", result)
}

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dto.ParseDate(*s)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + field + ": expected YYYY-MM-DD")
	}
	return t, nil
}
