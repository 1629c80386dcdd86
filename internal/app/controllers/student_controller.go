package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/app/repositories"
	"github.com/schoolerp/student-service/internal/app/services"
	"github.com/schoolerp/student-service/internal/middleware"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/helpers"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// StudentController handles admission record endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudentList retrieves a filtered page of students
// @Summary List students
// @Description Retrieves a page of students filtered by search text, status code and class
// @Tags students
// @Produce json
// @Param search query string false "Matches name or admission number"
// @Param status query int false "Status code"
// @Param class query int false "Class"
// @Param page query int false "0-based page index"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.Response{data=dto.StudentList} "Students retrieved successfully"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /getStudentList [get]
func (c *StudentController) GetStudentList(ctx *gin.Context) {
	rctx := ctx.Request.Context()
	start := time.Now()

	filter := repositories.StudentFilter{Search: ctx.Query("search")}
	if v, err := strconv.ParseInt(ctx.Query("status"), 10, 64); err == nil {
		filter.Status = v
	}
	if v, err := strconv.Atoi(ctx.Query("class")); err == nil {
		filter.Class = v
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	log := logger.FromContext(rctx)
	log.Info().
		Str("search", filter.Search).Int64("status", filter.Status).Int("class", filter.Class).
		Int("page", page).Int("size", size).
		Msg("API call: list students")

	list, err := c.studentService.ListStudents(rctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metadata := helpers.NewListMetadata(list.Total, page, size)
	metadata.Operation = "GET_ALL_STUDENTS"
	elapsed := time.Since(start).Milliseconds()
	metadata.ExecutionTimeMs = &elapsed

	ctx.JSON(http.StatusOK, dto.OKWithMeta(rctx, list, "Students retrieved successfully", metadata))
}

// GetStudentByID retrieves one student with document metadata
// @Summary Get student by id
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.Response "Invalid student ID"
// @Failure 404 {object} dto.Response "Student not found"
// @Router /getStudentById/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Student ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	student, err := c.studentService.GetStudentByID(rctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKWithMeta(rctx, student, "Student retrieved successfully",
		&dto.Metadata{Operation: "GET_STUDENT_BY_ID"}))
}

// CreateStudent admits a new student
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.Response{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.Response "Validation failed or duplicate admission number"
// @Router /createStudent [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	log := logger.FromContext(rctx)
	log.Info().
		Str("firstName", req.FirstName).Str("lastName", req.LastName).
		Msg("API call: create student")

	student, err := c.studentService.CreateStudent(rctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OKWithMeta(rctx, student, "Student created successfully",
		&dto.Metadata{Operation: "CREATE_STUDENT"}))
}

// UpdateStudent rewrites the mutable fields of a student
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.Response{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.Response "Validation failed"
// @Failure 404 {object} dto.Response "Student not found"
// @Router /updateStudent/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Student ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(rctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKWithMeta(rctx, student, "Student updated successfully",
		&dto.Metadata{Operation: "UPDATE_STUDENT"}))
}

// DeleteStudent soft deletes a student
// @Summary Delete student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response "Student deleted successfully"
// @Failure 404 {object} dto.Response "Student not found"
// @Router /deleteStudent/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Student ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	if err := c.studentService.DeleteStudent(rctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Message(rctx, "Student deleted successfully"))
}

// PromoteStudents moves a cohort to a new class and section
// @Summary Promote students
// @Description Records a promotion audit row per student and moves the cohort in one transaction
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.PromoteStudentsRequest true "Promotion request"
// @Success 200 {object} dto.Response "Students promoted successfully"
// @Failure 400 {object} dto.Response "Validation failed or status not configured"
// @Failure 404 {object} dto.Response "No students found with provided IDs"
// @Router /promote [post]
func (c *StudentController) PromoteStudents(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	var req dto.PromoteStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	log := logger.FromContext(rctx)
	log.Info().
		Int("students", len(req.StudentIDs)).
		Int("fromClass", req.FromClass).Int("toClass", req.ToClass).
		Msg("API call: promote students")

	if err := c.studentService.PromoteStudents(rctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Message(rctx, "Students promoted successfully"))
}

// GetPromotionHistory returns a student's promotion audit trail
// @Summary Get promotion history
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response{data=[]models.StudentPromotion} "Promotion history retrieved successfully"
// @Failure 404 {object} dto.Response "Student not found"
// @Router /promotionHistory/{id} [get]
func (c *StudentController) GetPromotionHistory(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Student ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	history, err := c.studentService.GetPromotionHistory(rctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if history == nil {
		history = []*models.StudentPromotion{}
	}

	ctx.JSON(http.StatusOK, dto.OKWithMeta(rctx, history, "Promotion history retrieved successfully",
		&dto.Metadata{Operation: "GET_PROMOTION_HISTORY"}))
}
