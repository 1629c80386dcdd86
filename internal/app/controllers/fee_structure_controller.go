package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/app/services"
	"github.com/schoolerp/student-service/internal/middleware"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/helpers"
)

// FeeStructureController exposes read-only fee structure endpoints.
type FeeStructureController struct {
	feeStructureService *services.FeeStructureService
}

// NewFeeStructureController creates a new FeeStructureController.
func NewFeeStructureController(feeStructureService *services.FeeStructureService) *FeeStructureController {
	return &FeeStructureController{feeStructureService: feeStructureService}
}

// GetAllFeeStructures lists fee structures
// @Summary List fee structures
// @Tags fee-structures
// @Produce json
// @Param classId query int false "Filter by class"
// @Param sectionId query int false "Filter by section"
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Success 200 {array} models.FeeStructure
// @Router /fee-structures [get]
func (c *FeeStructureController) GetAllFeeStructures(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	classID, _ := strconv.ParseInt(ctx.Query("classId"), 10, 64)
	sectionID, _ := strconv.ParseInt(ctx.Query("sectionId"), 10, 64)
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	structures, _, err := c.feeStructureService.ListFeeStructures(rctx, classID, sectionID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if structures == nil {
		structures = []*models.FeeStructure{}
	}

	ctx.JSON(http.StatusOK, structures)
}

// GetFeeStructureByID returns a single fee structure
// @Summary Get fee structure by ID
// @Tags fee-structures
// @Produce json
// @Param id path int true "Fee structure ID"
// @Success 200 {object} models.FeeStructure
// @Failure 404 {object} dto.Response "Fee structure not found"
// @Router /fee-structures/{id} [get]
func (c *FeeStructureController) GetFeeStructureByID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Fee structure ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	structure, err := c.feeStructureService.GetFeeStructureByID(rctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, structure)
}
