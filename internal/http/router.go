package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/skillpath/skillpath-backend/internal/http/handlers"
	httpMW "github.com/skillpath/skillpath-backend/internal/http/middleware"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	CatalogHandler    *httpH.CatalogHandler
	GraphHandler      *httpH.GraphHandler
	PathHandler       *httpH.PathHandler
	EnrollmentHandler *httpH.EnrollmentHandler
	LearnerHandler    *httpH.LearnerHandler
	EventHandler      *httpH.EventStreamHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())
	r.Use(otelgin.Middleware("skillpath-backend"))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.CatalogHandler != nil {
			api.GET("/skill-maps", cfg.CatalogHandler.ListSkillMaps)
			api.GET("/skill-maps/:id", cfg.CatalogHandler.GetSkillMap)
			api.DELETE("/skill-maps/:id", cfg.CatalogHandler.DeleteSkillMap)
		}
		if cfg.GraphHandler != nil {
			api.GET("/skill-maps/:id/graph/acyclic", cfg.GraphHandler.CheckAcyclic)
		}
		if cfg.PathHandler != nil {
			api.POST("/paths/compute", cfg.PathHandler.ComputePath)
		}
		if cfg.EnrollmentHandler != nil {
			api.POST("/enrollments", cfg.EnrollmentHandler.Enroll)
			api.POST("/progress", cfg.EnrollmentHandler.UpdateProgress)
		}
		if cfg.LearnerHandler != nil {
			api.GET("/learners/:id/paths", cfg.LearnerHandler.ListPaths)
			api.DELETE("/learners/:id/paths/:path_id", cfg.LearnerHandler.DeletePath)
			api.GET("/learners/:id/skills", cfg.LearnerHandler.ListSkills)
		}
		if cfg.EventHandler != nil {
			api.GET("/learners/:id/events", cfg.EventHandler.Stream)
		}
	}

	return r
}
