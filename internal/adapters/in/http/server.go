// Package http exposes the fulfillment operations over a REST API.
// Handlers translate JSON payloads into guarded commands and queries, and
// map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	QuoteOrder         commands.QuoteOrderCommandHandler
	TransitionOrder    commands.TransitionOrderCommandHandler
	ProposeAlternative commands.ProposeAlternativeCommandHandler

	CreateBox     commands.CreateBoxCommandHandler
	AssignOrder   commands.AssignOrderToBoxCommandHandler
	UnassignOrder commands.UnassignOrderFromBoxCommandHandler
	SendBox       commands.SendBoxDirectlyCommandHandler
	UnpackBox     commands.UnpackBoxCommandHandler
	DeleteBox     commands.DeleteBoxCommandHandler

	CreateContainer commands.CreateContainerCommandHandler
	AssignBox       commands.AssignBoxToContainerCommandHandler
	SendContainer   commands.SendContainerCommandHandler
	DeleteContainer commands.DeleteContainerCommandHandler

	PatchTariffs commands.PatchTariffsCommandHandler
	RefreshRates commands.RefreshRatesCommandHandler
	Tariffs      ports.TariffStore

	ActiveOrders      queries.GetActiveOrdersQueryHandler
	BoxContents       queries.GetBoxContentsQueryHandler
	ShippedContainers queries.GetShippedContainersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given use-case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.POST("/orders/:id/quote", s.QuoteOrder)
	api.POST("/orders/:id/transitions/:transition", s.TransitionOrder)
	api.POST("/orders/:id/alternative", s.ProposeAlternative)

	api.POST("/boxes", s.CreateBox)
	api.GET("/boxes/:id/orders", s.GetBoxContents)
	api.POST("/boxes/:id/orders", s.AssignOrderToBox)
	api.DELETE("/boxes/:id/orders/:orderId", s.UnassignOrderFromBox)
	api.POST("/boxes/:id/send", s.SendBoxDirectly)
	api.POST("/boxes/:id/unpack", s.UnpackBox)
	api.DELETE("/boxes/:id", s.DeleteBox)

	api.POST("/containers", s.CreateContainer)
	api.GET("/containers/shipped", s.GetShippedContainers)
	api.POST("/containers/:id/boxes", s.AssignBoxToContainer)
	api.POST("/containers/:id/send", s.SendContainer)
	api.DELETE("/containers/:id", s.DeleteContainer)

	api.GET("/tariffs", s.GetTariffs)
	api.PATCH("/tariffs", s.PatchTariffs)
	api.POST("/rates/refresh", s.RefreshRates)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps a domain error onto an HTTP response. Guard violations and
// malformed values are client errors; transition guards are conflicts;
// partially-compensated cascades and unknown failures are server errors.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// pathID parses a positive integer id from a path parameter.
func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}
