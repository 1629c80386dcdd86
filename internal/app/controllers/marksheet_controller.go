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
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// MarksheetController handles marksheet endpoints. Like the id card
// endpoints these return bare entities, not the response envelope.
type MarksheetController struct {
	marksheetService *services.MarksheetService
}

// NewMarksheetController creates a new MarksheetController.
func NewMarksheetController(marksheetService *services.MarksheetService) *MarksheetController {
	return &MarksheetController{marksheetService: marksheetService}
}

// GetAllMarksheets lists marksheets
// @Summary List marksheets
// @Tags marksheets
// @Produce json
// @Param page query int false "0-based page index"
// @Param size query int false "Page size (max 100)"
// @Success 200 {array} models.Marksheet
// @Router /marksheets [get]
func (c *MarksheetController) GetAllMarksheets(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sheets, _, err := c.marksheetService.ListMarksheets(rctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if sheets == nil {
		sheets = []*models.Marksheet{}
	}

	ctx.JSON(http.StatusOK, sheets)
}

// CreateMarksheet records an exam result
// @Summary Create marksheet
// @Description Stores an exam result, deriving percentage and grade when left unset
// @Tags marksheets
// @Accept json
// @Produce json
// @Param request body dto.MarksheetRequest true "Marksheet information"
// @Success 201 {object} models.Marksheet
// @Failure 400 {object} dto.Response "Validation failed"
// @Router /marksheets [post]
func (c *MarksheetController) CreateMarksheet(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	var req dto.MarksheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	log := logger.FromContext(rctx)
	log.Info().Str("studentId", req.StudentID).Msg("API call: create marksheet")

	sheet, err := c.marksheetService.CreateMarksheet(rctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, sheet)
}

// GetMarksheetsByStudentID lists the marksheets of one student
// @Summary List marksheets of a student
// @Tags marksheets
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} models.Marksheet
// @Router /marksheets/student/{studentId} [get]
func (c *MarksheetController) GetMarksheetsByStudentID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	sheets, err := c.marksheetService.GetMarksheetsByStudentID(rctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if sheets == nil {
		sheets = []*models.Marksheet{}
	}

	ctx.JSON(http.StatusOK, sheets)
}

// GetMarksheetByID returns one marksheet
// @Summary Get marksheet by id
// @Tags marksheets
// @Produce json
// @Param id path int true "Marksheet ID"
// @Success 200 {object} models.Marksheet
// @Failure 404 {object} dto.Response "Marksheet not found"
// @Router /marksheets/{id} [get]
func (c *MarksheetController) GetMarksheetByID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Marksheet ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	sheet, err := c.marksheetService.GetMarksheetByID(rctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sheet)
}
