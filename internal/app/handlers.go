package app

import (
	"github.com/skillpath/skillpath-backend/internal/events"
	"github.com/skillpath/skillpath-backend/internal/http"
	httpH "github.com/skillpath/skillpath-backend/internal/http/handlers"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Catalog    *httpH.CatalogHandler
	Graph      *httpH.GraphHandler
	Path       *httpH.PathHandler
	Enrollment *httpH.EnrollmentHandler
	Learner    *httpH.LearnerHandler
	Events     *httpH.EventStreamHandler
}

func wireHandlers(log *logger.Logger, services Services, hub *events.Hub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Catalog:    httpH.NewCatalogHandler(services.Catalog),
		Graph:      httpH.NewGraphHandler(services.Path),
		Path:       httpH.NewPathHandler(services.Path),
		Enrollment: httpH.NewEnrollmentHandler(services.Enrollment),
		Learner:    httpH.NewLearnerHandler(services.Learner),
		Events:     httpH.NewEventStreamHandler(log, hub),
	}
}

func wireServer(log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:               log,
		HealthHandler:     handlers.Health,
		CatalogHandler:    handlers.Catalog,
		GraphHandler:      handlers.Graph,
		PathHandler:       handlers.Path,
		EnrollmentHandler: handlers.Enrollment,
		LearnerHandler:    handlers.Learner,
		EventHandler:      handlers.Events,
	})
}
