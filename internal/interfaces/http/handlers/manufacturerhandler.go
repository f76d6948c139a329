package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recallhub/internal/application/manufacturer/usecases"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/utils"
)

type ManufacturerHandler struct {
	createManufacturerUC usecases.CreateManufacturerExecutor
	getManufacturerUC    usecases.GetManufacturerExecutor
	listManufacturersUC  usecases.ListManufacturersExecutor
	updateManufacturerUC usecases.UpdateManufacturerExecutor
	deleteManufacturerUC usecases.DeleteManufacturerExecutor
	logger               logger.Interface
}

func NewManufacturerHandler(
	createManufacturerUC usecases.CreateManufacturerExecutor,
	getManufacturerUC usecases.GetManufacturerExecutor,
	listManufacturersUC usecases.ListManufacturersExecutor,
	updateManufacturerUC usecases.UpdateManufacturerExecutor,
	deleteManufacturerUC usecases.DeleteManufacturerExecutor,
) *ManufacturerHandler {
	return &ManufacturerHandler{
		createManufacturerUC: createManufacturerUC,
		getManufacturerUC:    getManufacturerUC,
		listManufacturersUC:  listManufacturersUC,
		updateManufacturerUC: updateManufacturerUC,
		deleteManufacturerUC: deleteManufacturerUC,
		logger:               logger.NewLogger(),
	}
}

type CreateManufacturerRequest struct {
	MakerName   string  `json:"maker_name" binding:"required"`
	MakerDetail *string `json:"maker_detail"`
	RegionAt    *string `json:"region_at"`
}

// UpdateManufacturerRequest distinguishes "set to NULL" from "leave
// unchanged" with explicit clear flags, since an absent JSON field and a
// null one both decode to a nil pointer.
type UpdateManufacturerRequest struct {
	MakerName   *string `json:"maker_name"`
	MakerDetail *string `json:"maker_detail"`
	RegionAt    *string `json:"region_at"`
	ClearDetail bool    `json:"clear_detail"`
	ClearRegion bool    `json:"clear_region"`
}

func (h *ManufacturerHandler) CreateManufacturer(c *gin.Context) {
	var req CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create manufacturer", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateManufacturerCommand{
		MakerName:   req.MakerName,
		MakerDetail: req.MakerDetail,
		RegionAt:    req.RegionAt,
	}

	result, err := h.createManufacturerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Manufacturer created successfully")
}

func (h *ManufacturerHandler) GetManufacturer(c *gin.Context) {
	makerID, err := utils.ParseUintParam(c, "id", "manufacturer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getManufacturerUC.Execute(c.Request.Context(), usecases.GetManufacturerQuery{MakerID: makerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ManufacturerHandler) ListManufacturers(c *gin.Context) {
	query := usecases.ListManufacturersQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}
	if name := c.Query("name"); name != "" {
		query.Name = &name
	}

	result, err := h.listManufacturersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Manufacturers, result.Total)
}

func (h *ManufacturerHandler) UpdateManufacturer(c *gin.Context) {
	makerID, err := utils.ParseUintParam(c, "id", "manufacturer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update manufacturer",
			"maker_id", makerID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateManufacturerCommand{
		MakerID:     makerID,
		MakerName:   req.MakerName,
		MakerDetail: req.MakerDetail,
		RegionAt:    req.RegionAt,
		ClearDetail: req.ClearDetail,
		ClearRegion: req.ClearRegion,
	}

	result, err := h.updateManufacturerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Manufacturer updated successfully", result)
}

func (h *ManufacturerHandler) DeleteManufacturer(c *gin.Context) {
	makerID, err := utils.ParseUintParam(c, "id", "manufacturer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteManufacturerUC.Execute(c.Request.Context(), usecases.DeleteManufacturerCommand{MakerID: makerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Manufacturer deleted successfully", result)
}
