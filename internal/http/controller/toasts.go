package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brew_console/internal/config"
	"brew_console/internal/domain"
	"brew_console/internal/http/dto"
	"brew_console/internal/http/resp"
	"brew_console/internal/model"
	"brew_console/internal/queue"
	"brew_console/internal/service/notify"
	"brew_console/internal/sse"
)

type Handler struct {
	cfg *config.Config
	svc *notify.Service
	hub *sse.Hub
	log *zap.Logger
	pub queue.Publisher
}

func NewHandler(cfg *config.Config, svc *notify.Service, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{cfg: cfg, svc: svc, hub: hub, log: logger, pub: publisher}
}

func (h *Handler) ListToasts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List())
}

func (h *Handler) CreateToast(c *gin.Context) {
	req, ok := bindToast(c)
	if !ok {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), model.ToastInfo{
		Text:      req.Text,
		Style:     req.Style,
		TimeoutMS: req.Timeout,
	})
	if err != nil {
		if isInvalidToast(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: err.Error()})
			return
		}
		h.log.Error("create toast failed",
			zap.String("style", req.Style),
			zap.String("text", req.Text),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to create toast"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) PublishToast(c *gin.Context) {
	req, ok := bindToast(c)
	if !ok {
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		h.log.Error("publish payload marshal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish toast"})
		return
	}

	routingKey := queue.RoutingKey(h.cfg.RabbitPublishPrefix, req.Style)
	if err := h.pub.Publish(c.Request.Context(), payload, routingKey); err != nil {
		h.log.Error("publish toast failed",
			zap.String("routing_key", routingKey),
			zap.String("text", req.Text),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish toast"})
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Code: resp.CodeQueued, Message: "queued"})
}

func (h *Handler) DismissToast(c *gin.Context) {
	h.svc.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) History(c *gin.Context) {
	limit := h.cfg.HistoryLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	history, err := h.svc.ListHistory(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to list history"})
		return
	}
	if history == nil {
		history = []model.HistoryEntry{}
	}
	c.JSON(http.StatusOK, history)
}

// Stream sends one created event per live toast, then every transition until
// the client goes away. The client is registered before the snapshot is taken
// so no transition falls between the two. The stream never repeats a created
// event and never sends removed for an id the client was not told about.
// A client that falls too far behind is closed and resyncs on reconnect.
func (h *Handler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "streaming unsupported"})
		return
	}

	client := &sse.Client{Ch: make(chan model.ToastEvent, 256)}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	var seq uint64
	sent := make(map[string]struct{})
	for _, t := range h.svc.List() {
		seq++
		sent[t.ID] = struct{}{}
		if err := writeEvent(c.Writer, seq, model.ToastEvent{Type: model.ToastEventCreated, Toast: t}); err != nil {
			h.log.Error("write snapshot event failed", zap.String("toast_id", t.ID), zap.Error(err))
			return
		}
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.cfg.SSEHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				h.log.Error("heartbeat write failed", zap.Error(err))
				return
			}
			flusher.Flush()
		case event, ok := <-client.Ch:
			if !ok {
				return
			}
			_, known := sent[event.Toast.ID]
			switch {
			case event.Type == model.ToastEventCreated && known:
				continue
			case event.Type == model.ToastEventCreated:
				sent[event.Toast.ID] = struct{}{}
			case !known:
				continue
			default:
				delete(sent, event.Toast.ID)
			}
			seq++
			if err := writeEvent(c.Writer, seq, event); err != nil {
				h.log.Error("write toast event failed", zap.String("toast_id", event.Toast.ID), zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func bindToast(c *gin.Context) (dto.CreateToastRequest, bool) {
	var req dto.CreateToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return req, false
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "text is required"})
		return req, false
	}
	if !domain.IsValidStyle(req.Style) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "style must be one of: success, error, info, warning or empty"})
		return req, false
	}
	if req.Timeout != nil && *req.Timeout < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "timeout must not be negative"})
		return req, false
	}
	return req, true
}

func isInvalidToast(err error) bool {
	return errors.Is(err, domain.ErrEmptyText) ||
		errors.Is(err, domain.ErrInvalidStyle) ||
		errors.Is(err, domain.ErrNegativeTimeout)
}

func writeEvent(w http.ResponseWriter, seq uint64, event model.ToastEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: toast\ndata: %s\n\n", seq, payload)
	return err
}
