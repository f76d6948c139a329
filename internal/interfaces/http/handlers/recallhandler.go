package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recallhub/internal/application/recall/usecases"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/utils"
)

// RecallHandler serves recall endpoints nested under a model: the composite
// key (recall id, model id) comes from the route, never from the body.
type RecallHandler struct {
	createRecallUC usecases.CreateRecallExecutor
	getRecallUC    usecases.GetRecallExecutor
	listRecallsUC  usecases.ListRecallsExecutor
	updateRecallUC usecases.UpdateRecallExecutor
	deleteRecallUC usecases.DeleteRecallExecutor
	logger         logger.Interface
}

func NewRecallHandler(
	createRecallUC usecases.CreateRecallExecutor,
	getRecallUC usecases.GetRecallExecutor,
	listRecallsUC usecases.ListRecallsExecutor,
	updateRecallUC usecases.UpdateRecallExecutor,
	deleteRecallUC usecases.DeleteRecallExecutor,
) *RecallHandler {
	return &RecallHandler{
		createRecallUC: createRecallUC,
		getRecallUC:    getRecallUC,
		listRecallsUC:  listRecallsUC,
		updateRecallUC: updateRecallUC,
		deleteRecallUC: deleteRecallUC,
		logger:         logger.NewLogger(),
	}
}

type CreateRecallRequest struct {
	RecallID       uint    `json:"recall_id" binding:"required"`
	RecallTitle    string  `json:"recall_title" binding:"required"`
	DeviceType     string  `json:"device_type" binding:"required"`
	RecallType     *string `json:"recall_type"`
	DefectDesc     *string `json:"defect_desc"`
	FixMethod      *string `json:"fix_method"`
	RecallCenter   *string `json:"recall_center"`
	RecallQuantity *int    `json:"recall_quantity"`
	RecallDate     *string `json:"recall_date"`
}

type UpdateRecallRequest struct {
	RecallTitle    *string `json:"recall_title"`
	DeviceType     *string `json:"device_type"`
	RecallType     *string `json:"recall_type"`
	DefectDesc     *string `json:"defect_desc"`
	FixMethod      *string `json:"fix_method"`
	RecallCenter   *string `json:"recall_center"`
	RecallQuantity *int    `json:"recall_quantity"`
	RecallDate     *string `json:"recall_date"`
}

func (h *RecallHandler) CreateRecall(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateRecallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create recall",
			"model_id", modelID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateRecallCommand{
		RecallID:       req.RecallID,
		ModelID:        modelID,
		RecallTitle:    req.RecallTitle,
		DeviceType:     req.DeviceType,
		RecallType:     req.RecallType,
		DefectDesc:     req.DefectDesc,
		FixMethod:      req.FixMethod,
		RecallCenter:   req.RecallCenter,
		RecallQuantity: req.RecallQuantity,
		RecallDate:     req.RecallDate,
	}

	result, err := h.createRecallUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Recall created successfully")
}

func (h *RecallHandler) GetRecall(c *gin.Context) {
	modelID, recallID, err := parseRecallKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRecallUC.Execute(c.Request.Context(), usecases.GetRecallQuery{
		ModelID:  modelID,
		RecallID: recallID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RecallHandler) ListRecalls(c *gin.Context) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRecallsUC.Execute(c.Request.Context(), usecases.ListRecallsQuery{ModelID: modelID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Recalls, result.Total)
}

func (h *RecallHandler) UpdateRecall(c *gin.Context) {
	modelID, recallID, err := parseRecallKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRecallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update recall",
			"model_id", modelID,
			"recall_id", recallID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateRecallCommand{
		ModelID:        modelID,
		RecallID:       recallID,
		RecallTitle:    req.RecallTitle,
		DeviceType:     req.DeviceType,
		RecallType:     req.RecallType,
		DefectDesc:     req.DefectDesc,
		FixMethod:      req.FixMethod,
		RecallCenter:   req.RecallCenter,
		RecallQuantity: req.RecallQuantity,
		RecallDate:     req.RecallDate,
	}

	result, err := h.updateRecallUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recall updated successfully", result)
}

func (h *RecallHandler) DeleteRecall(c *gin.Context) {
	modelID, recallID, err := parseRecallKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteRecallUC.Execute(c.Request.Context(), usecases.DeleteRecallCommand{
		ModelID:  modelID,
		RecallID: recallID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recall deleted successfully", result)
}

func parseRecallKey(c *gin.Context) (uint, uint, error) {
	modelID, err := utils.ParseUintParam(c, "model_id", "model")
	if err != nil {
		return 0, 0, err
	}

	recallID, err := utils.ParseUintParam(c, "recall_id", "recall")
	if err != nil {
		return 0, 0, err
	}

	return modelID, recallID, nil
}
