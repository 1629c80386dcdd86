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
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// DocumentController handles document upload endpoints.
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController.
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// UploadDocuments stores one or more uploaded files for students
// @Summary Upload student documents
// @Description Accepts multipart form data with parallel studentId, documentType and file fields
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param studentId formData string true "Student id per file"
// @Param documentType formData string false "Document type per file"
// @Param file formData file true "Document file"
// @Success 200 {array} models.StudentDocument
// @Failure 400 {object} dto.Response "Missing file or student id"
// @Router /uploadDocuments [post]
func (c *DocumentController) UploadDocuments(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail(rctx,
			"Multipart form data is required", apperrors.CodeError, err.Error()))
		return
	}

	files := form.File["file"]
	studentIDs := form.Value["studentId"]
	documentTypes := form.Value["documentType"]

	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.Fail(rctx,
			"At least one file is required", apperrors.CodeError, ""))
		return
	}

	uploads := make([]services.DocumentUpload, 0, len(files))
	for i, fh := range files {
		var studentID int64
		if i < len(studentIDs) {
			studentID, _ = strconv.ParseInt(studentIDs[i], 10, 64)
		}
		documentType := ""
		if i < len(documentTypes) {
			documentType = documentTypes[i]
		}
		uploads = append(uploads, services.DocumentUpload{
			StudentID:    studentID,
			DocumentType: documentType,
			File:         fh,
		})
	}

	log := logger.FromContext(rctx)
	log.Info().Int("files", len(uploads)).Msg("API call: upload documents")

	docs, err := c.documentService.UploadDocuments(rctx, uploads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if docs == nil {
		docs = []*models.StudentDocument{}
	}

	ctx.JSON(http.StatusOK, docs)
}

// DeleteDocument soft deletes a document
// @Summary Delete document
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {string} string "Document deleted successfully"
// @Failure 404 {object} dto.Response "Document not found"
// @Router /delete/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailField(rctx,
			"Document ID must be a valid number", apperrors.CodeError, "id", ""))
		return
	}

	if err := c.documentService.DeleteDocument(rctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, "Document deleted successfully")
}
