package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/middleware"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

// Handlers groups the API handlers mounted by RegisterRoutes.
type Handlers struct {
	Offenses       *OffenseHandler
	Cases          *CaseHandler
	Actions        *ActionHandler
	Appeals        *AppealHandler
	Investigations *InvestigationHandler
	Letters        *LetterHandler
	Documents      *DocumentHandler
	Resignations   *ResignationHandler
	ExitInterviews *ExitInterviewHandler
}

// RegisterRoutes mounts the API under api. auth guards every route except the
// signed letter download.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, auth gin.HandlerFunc, logger *zap.Logger) {
	hrStaff := middleware.RequireRoles(models.RoleAdmin, models.RoleHRManager, models.RoleHROfficer)
	hrManagers := middleware.RequireRoles(models.RoleAdmin, models.RoleHRManager)

	api.GET("/letters/download", middleware.Audit(logger, "download", "letter"), h.Letters.Download)

	secured := api.Group("")
	secured.Use(auth)

	offenses := secured.Group("/offenses")
	offenses.GET("", h.Offenses.List)
	offenses.GET("/:id", h.Offenses.Get)
	offenses.POST("", hrManagers, h.Offenses.Create)
	offenses.PUT("/:id", hrManagers, h.Offenses.Update)

	cases := secured.Group("/cases")
	cases.GET("", h.Cases.List)
	cases.POST("", hrStaff, h.Cases.Create)
	cases.GET("/export", hrStaff, middleware.Audit(logger, "export", "case_register"), h.Cases.Export)
	cases.GET("/:id", h.Cases.Get)
	cases.DELETE("/:id", hrManagers, h.Cases.Delete)
	cases.GET("/:id/recommendation", h.Cases.Recommendation)
	cases.GET("/:id/history", h.Cases.History)
	cases.POST("/:id/show-cause", h.Cases.IssueShowCause)
	cases.POST("/:id/show-cause-response", h.Cases.RecordShowCauseResponse)
	cases.POST("/:id/investigation", h.Cases.StartInvestigation)
	cases.POST("/:id/hearing", h.Cases.ScheduleHearing)
	cases.POST("/:id/decision-stage", h.Cases.MoveToDecision)
	cases.POST("/:id/decision", h.Cases.RecordDecision)
	cases.POST("/:id/serve", h.Cases.ServeDecision)
	cases.POST("/:id/close", h.Cases.Close)
	cases.POST("/:id/appeal", h.Cases.OpenAppeal)
	cases.POST("/:id/acknowledge", h.Cases.Acknowledge)
	cases.POST("/:id/contest", h.Cases.Contest)
	cases.GET("/:id/letter", h.Letters.Link)
	cases.POST("/:id/letter", hrStaff, h.Letters.Generate)
	cases.GET("/:id/actions", h.Actions.List)
	cases.POST("/:id/actions", hrStaff, h.Actions.Create)
	cases.GET("/:id/appeals", h.Appeals.List)
	cases.POST("/:id/appeals", h.Appeals.File)
	cases.GET("/:id/investigations", h.Investigations.List)
	cases.POST("/:id/investigations", hrStaff, h.Investigations.Create)

	actions := secured.Group("/actions/:id")
	actions.POST("/submit", h.Actions.Submit)
	actions.POST("/approve", h.Actions.Approve)
	actions.POST("/serve", h.Actions.Serve)
	actions.POST("/complete", h.Actions.Complete)
	actions.POST("/revoke", h.Actions.Revoke)
	actions.POST("/appealed", h.Actions.MarkAppealed)

	appeals := secured.Group("/appeals/:id")
	appeals.POST("/review", h.Appeals.StartReview)
	appeals.POST("/hearing", h.Appeals.ScheduleHearing)
	appeals.POST("/decide", h.Appeals.Decide)
	appeals.POST("/close", h.Appeals.Close)

	investigations := secured.Group("/investigations/:id", hrStaff)
	investigations.POST("/complete", h.Investigations.Complete)
	investigations.POST("/suspend", h.Investigations.Suspend)
	investigations.POST("/resume", h.Investigations.Resume)

	secured.GET("/document-types", h.Documents.ListTypes)
	secured.POST("/document-types", hrStaff, h.Documents.CreateType)

	documents := secured.Group("/documents")
	documents.GET("", h.Documents.List)
	documents.POST("", hrStaff, h.Documents.Upload)
	documents.GET("/:id", h.Documents.Get)
	documents.GET("/:id/download", middleware.Audit(logger, "download", "document"), h.Documents.Download)
	documents.DELETE("/:id", hrStaff, h.Documents.Archive)

	resignations := secured.Group("/resignations")
	resignations.GET("", h.Resignations.List)
	resignations.POST("", h.Resignations.Create)
	resignations.GET("/:id", h.Resignations.Get)
	resignations.POST("/:id/confirm", h.Resignations.Confirm)
	resignations.POST("/:id/approve", hrManagers, h.Resignations.Approve)
	resignations.POST("/:id/cancel", hrManagers, h.Resignations.Cancel)
	resignations.POST("/:id/reset", hrManagers, h.Resignations.Reset)

	interviews := secured.Group("/exit-interviews", hrStaff)
	interviews.GET("", h.ExitInterviews.List)
	interviews.POST("", h.ExitInterviews.Create)
	interviews.POST("/:id/confirm", h.ExitInterviews.Confirm)
	interviews.POST("/:id/done", h.ExitInterviews.Done)
	interviews.POST("/:id/reset", h.ExitInterviews.Reset)
}
