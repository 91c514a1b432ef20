package controller

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brew_console/internal/http/dto"
	"brew_console/internal/http/resp"
	"brew_console/internal/input"
	"brew_console/internal/settings"
)

type SettingsHandler struct {
	svc *settings.Service
	log *zap.Logger
}

func NewSettingsHandler(svc *settings.Service, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger}
}

func (h *SettingsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List())
}

func (h *SettingsHandler) Commit(c *gin.Context) {
	name := c.Param("name")
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "value must be a number"})
		return
	}

	err = h.svc.Commit(c.Request.Context(), name, value)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, settings.ErrUnknownSetting):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: err.Error()})
	case errors.Is(err, input.ErrBelowMin), errors.Is(err, input.ErrAboveMax), errors.Is(err, input.ErrZero):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: err.Error()})
	default:
		h.log.Warn("setting commit failed", zap.String("setting", name), zap.Float64("value", value), zap.Error(err))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Code: resp.CodeBadGateway, Message: "failed to update " + name})
	}
}
