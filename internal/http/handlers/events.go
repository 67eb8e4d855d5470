package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/events"
	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// EventStreamHandler serves per-learner progress events over SSE. Messages
// reach the hub through the bus forwarder, so every API replica streams the
// same feed.
type EventStreamHandler struct {
	log *logger.Logger
	hub *events.Hub
}

func NewEventStreamHandler(baseLog *logger.Logger, hub *events.Hub) *EventStreamHandler {
	return &EventStreamHandler{
		log: baseLog.With("handler", "EventStreamHandler"),
		hub: hub,
	}
}

// GET /api/learners/:id/events
func (h *EventStreamHandler) Stream(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("invalid learner id"))
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		response.RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("streaming unsupported"))
		return
	}

	sub := h.hub.Subscribe(id.String())
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			flusher.Flush()
		case msg := <-sub.Outbound:
			raw, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn("marshal event failed", "event", msg.Event, "error", err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", msg.Event, raw)
			flusher.Flush()
		}
	}
}
