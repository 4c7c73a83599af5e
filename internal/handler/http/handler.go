package http

import (
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/service"
)

// Handler owns the HTTP transport: route registration, middleware and the
// request handlers binding the service layer to the JSON API.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
