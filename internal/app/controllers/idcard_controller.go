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

// IdCardController handles identity card endpoints. These return bare
// entities rather than the response envelope, matching the upstream
// contract that clients already depend on.
type IdCardController struct {
	idCardService *services.IdCardService
}

// NewIdCardController creates a new IdCardController.
func NewIdCardController(idCardService *services.IdCardService) *IdCardController {
	return &IdCardController{idCardService: idCardService}
}

// GetAllIdCards lists issued cards
// @Summary List ID cards
// @Tags id-cards
// @Produce json
// @Param page query int false "0-based page index"
// @Param size query int false "Page size (max 100)"
// @Success 200 {array} models.IdCard
// @Router /id-cards [get]
func (c *IdCardController) GetAllIdCards(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	cards, _, err := c.idCardService.ListIdCards(rctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if cards == nil {
		cards = []*models.IdCard{}
	}

	ctx.JSON(http.StatusOK, cards)
}

// CreateIdCard issues a new card
// @Summary Create ID card
// @Tags id-cards
// @Accept json
// @Produce json
// @Param request body dto.IdCardRequest true "Card information"
// @Success 201 {object} models.IdCard
// @Failure 400 {object} dto.Response "Validation failed"
// @Router /id-cards [post]
func (c *IdCardController) CreateIdCard(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	var req dto.IdCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	log := logger.FromContext(rctx)
	log.Info().Str("studentId", req.StudentID).Msg("API call: create id card")

	card, err := c.idCardService.CreateIdCard(rctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, card)
}

// GetIdCardsByStudentID lists the cards of one student
// @Summary List ID cards of a student
// @Tags id-cards
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} models.IdCard
// @Router /id-cards/student/{studentId} [get]
func (c *IdCardController) GetIdCardsByStudentID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	cards, err := c.idCardService.GetIdCardsByStudentID(rctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if cards == nil {
		cards = []*models.IdCard{}
	}

	ctx.JSON(http.StatusOK, cards)
}

// GetIdCardByID returns one issued card
// @Summary Get ID card by id
// @Tags id-cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.IdCard
// @Failure 404 {object} dto.Response "Card not found"
// @Router /id-cards/{id} [get]
func (c *IdCardController) GetIdCardByID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Card ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	card, err := c.idCardService.GetIdCardByID(rctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, card)
}
