package http

import (
	"context"
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the router in a net/http server so the process can drain
// in-flight requests on shutdown. Long-lived SSE streams end when their
// request context is cancelled.
type Server struct {
	Engine *gin.Engine
	srv    *nethttp.Server
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving on address until Shutdown or a listener error.
func (s *Server) Run(address string) error {
	s.srv = &nethttp.Server{Addr: address, Handler: s.Engine}
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
