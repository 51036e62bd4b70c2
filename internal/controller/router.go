package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/config"
	"github.com/lshigami/egzamapp/internal/controller/admin"
	"github.com/lshigami/egzamapp/internal/controller/user"
	"github.com/lshigami/egzamapp/internal/middleware"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *user.ExamController,
	attemptCtrl *user.AttemptController,
	diagnosticsCtrl *admin.DiagnosticsController,
) {
	api := router.Group("/api")
	api.Use(middleware.Identity(cfg))
	{
		exams := api.Group("/exams")
		exams.POST("/upload", examCtrl.UploadExam)
		exams.GET("", examCtrl.GetExams)
		exams.GET("/:id", examCtrl.GetExam)
		exams.POST("/:id/start", attemptCtrl.StartExam)
		exams.POST("/submit", attemptCtrl.SubmitExam)

		api.GET("/test", diagnosticsCtrl.Ping)
		if cfg.Diagnostics.Enabled {
			api.GET("/diagnostics/db-status", diagnosticsCtrl.DatabaseStatus)
		}
	}
}
