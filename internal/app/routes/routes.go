package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/schoolerp/student-service/internal/app/controllers"
	"github.com/schoolerp/student-service/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	idCardController *controllers.IdCardController,
	marksheetController *controllers.MarksheetController,
	documentController *controllers.DocumentController,
	feeStructureController *controllers.FeeStructureController,
) {
	// All endpoints live under the service base path
	base := router.Group("/api/v1/student-service")

	// --- Student routes ---
	{
		base.GET("/getStudentList", studentController.GetStudentList)
		base.GET("/getStudentById/:id", studentController.GetStudentByID)
		base.POST("/createStudent", studentController.CreateStudent)
		base.PUT("/updateStudent/:id", studentController.UpdateStudent)
		base.DELETE("/deleteStudent/:id", studentController.DeleteStudent)
		base.POST("/promote", studentController.PromoteStudents)
		base.GET("/promotionHistory/:id", studentController.GetPromotionHistory)
	}

	// --- ID card routes ---
	idCards := base.Group("/id-cards")
	{
		idCards.GET("", idCardController.GetAllIdCards)
		idCards.POST("", idCardController.CreateIdCard)
		idCards.GET("/student/:studentId", idCardController.GetIdCardsByStudentID)
		idCards.GET("/:id", idCardController.GetIdCardByID)
	}

	// --- Marksheet routes ---
	marksheets := base.Group("/marksheets")
	{
		marksheets.GET("", marksheetController.GetAllMarksheets)
		marksheets.POST("", marksheetController.CreateMarksheet)
		marksheets.GET("/student/:studentId", marksheetController.GetMarksheetsByStudentID)
		marksheets.GET("/:id", marksheetController.GetMarksheetByID)
	}

	// --- Document routes ---
	{
		base.POST("/uploadDocuments", documentController.UploadDocuments)
		base.DELETE("/delete/:id", documentController.DeleteDocument)
	}

	// --- Fee structure routes ---
	feeStructures := base.Group("/fee-structures")
	{
		feeStructures.GET("", feeStructureController.GetAllFeeStructures)
		feeStructures.GET("/:id", feeStructureController.GetFeeStructureByID)
	}

	// Health check endpoint
	base.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.OK(c.Request.Context(), gin.H{"status": "ok"}, "Service is healthy"))
	})

	// Swagger routes are set up in bootstrap.go already
}
