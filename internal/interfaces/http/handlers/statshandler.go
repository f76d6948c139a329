package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recallhub/internal/application/stats/usecases"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/utils"
)

// StatsHandler serves the read-only reporting endpoints: recall search,
// aggregate overview, rankings, the year trend, and search form options.
type StatsHandler struct {
	searchRecallsUC     usecases.SearchRecallsExecutor
	getRecallOverviewUC usecases.GetRecallOverviewExecutor
	getRecallRankingUC  usecases.GetRecallRankingExecutor
	getYearTrendUC      usecases.GetYearTrendExecutor
	getFilterOptionsUC  usecases.GetFilterOptionsExecutor
	logger              logger.Interface
}

func NewStatsHandler(
	searchRecallsUC usecases.SearchRecallsExecutor,
	getRecallOverviewUC usecases.GetRecallOverviewExecutor,
	getRecallRankingUC usecases.GetRecallRankingExecutor,
	getYearTrendUC usecases.GetYearTrendExecutor,
	getFilterOptionsUC usecases.GetFilterOptionsExecutor,
) *StatsHandler {
	return &StatsHandler{
		searchRecallsUC:     searchRecallsUC,
		getRecallOverviewUC: getRecallOverviewUC,
		getRecallRankingUC:  getRecallRankingUC,
		getYearTrendUC:      getYearTrendUC,
		getFilterOptionsUC:  getFilterOptionsUC,
		logger:              logger.NewLogger(),
	}
}

func (h *StatsHandler) SearchRecalls(c *gin.Context) {
	query := usecases.SearchRecallsQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}
	if keyword := c.Query("keyword"); keyword != "" {
		query.Keyword = &keyword
	}

	makerID, err := parseOptionalUintQuery(c, "maker_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.MakerID = makerID

	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.Year = year

	limit, err := parseOptionalIntQuery(c, "limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if limit != nil {
		query.Limit = *limit
	}

	result, err := h.searchRecallsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Recalls, int64(result.Total))
}

func (h *StatsHandler) GetOverview(c *gin.Context) {
	query := usecases.GetRecallOverviewQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}

	makerID, err := parseOptionalUintQuery(c, "maker_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.MakerID = makerID

	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.Year = year

	result, err := h.getRecallOverviewUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatsHandler) GetMakerRanking(c *gin.Context) {
	query, err := parseRankingQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRecallRankingUC.ExecuteMakerRanking(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatsHandler) GetModelRanking(c *gin.Context) {
	query, err := parseRankingQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRecallRankingUC.ExecuteModelRanking(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatsHandler) GetYearTrend(c *gin.Context) {
	query := usecases.GetYearTrendQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}

	makerID, err := parseOptionalUintQuery(c, "maker_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.MakerID = makerID

	result, err := h.getYearTrendUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatsHandler) GetFilterOptions(c *gin.Context) {
	query := usecases.GetFilterOptionsQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}

	result, err := h.getFilterOptionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseRankingQuery(c *gin.Context) (usecases.GetRecallRankingQuery, error) {
	query := usecases.GetRecallRankingQuery{}

	if region := c.Query("region_at"); region != "" {
		query.RegionAt = &region
	}

	makerID, err := parseOptionalUintQuery(c, "maker_id")
	if err != nil {
		return query, err
	}
	query.MakerID = makerID

	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return query, err
	}
	query.Year = year

	limit, err := parseOptionalIntQuery(c, "limit")
	if err != nil {
		return query, err
	}
	if limit != nil {
		query.Limit = *limit
	}

	return query, nil
}

func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return nil, errors.NewValidationError("invalid " + name + " parameter")
	}

	id := uint(value)
	return &id, nil
}

func parseOptionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name + " parameter")
	}

	return &value, nil
}
