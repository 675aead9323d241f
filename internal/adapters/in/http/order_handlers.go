package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// NewOrder is the request body for order intake. The id comes from the
// intake channel so references stay stable across systems.
type NewOrder struct {
	ID          int64  `json:"id"`
	ClientRef   string `json:"clientRef"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	FreightMode string `json:"freightMode"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.NewID(body.ID)
	if err != nil {
		return fail(ctx, err)
	}

	mode, err := kernel.NewFreightMode(body.FreightMode)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, body.ClientRef, body.Description, body.Quantity, mode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Quote is the request body for quoting an order. Amounts and measurements
// travel as decimal strings to keep full precision.
type Quote struct {
	UnitPrice    string `json:"unitPrice"`
	FreightPrice string `json:"freightPrice"`
	WeightKg     string `json:"weightKg"`
	HeightCm     string `json:"heightCm"`
	WidthCm      string `json:"widthCm"`
	LengthCm     string `json:"lengthCm"`
}

// QuoteResult reports the applied quote back to the staff client. Warnings
// flag data-quality problems that did not block the quote.
type QuoteResult struct {
	Warnings []string `json:"warnings"`
}

// QuoteOrder handles POST /api/v1/orders/:id/quote.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var body Quote
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitPrice, err := kernel.NewMoney(body.UnitPrice)
	if err != nil {
		return fail(ctx, err)
	}
	freightPrice, err := kernel.NewMoney(body.FreightPrice)
	if err != nil {
		return fail(ctx, err)
	}

	dims, err := parseDimensions(body)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewQuoteOrderCommand(orderID, unitPrice, freightPrice, dims)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	warnings, err := s.handlers.QuoteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	result := QuoteResult{Warnings: make([]string, 0, len(warnings))}
	for _, warning := range warnings {
		result.Warnings = append(result.Warnings, warning.String())
	}

	return ctx.JSON(http.StatusOK, result)
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions/:transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, commands.OrderTransition(ctx.Param("transition")))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AlternativeProposal is the request body for toggling the
// alternative-proposal flag.
type AlternativeProposal struct {
	Proposed bool `json:"proposed"`
}

// ProposeAlternative handles POST /api/v1/orders/:id/alternative.
func (s *Server) ProposeAlternative(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var body AlternativeProposal
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewProposeAlternativeCommand(orderID, body.Proposed)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ProposeAlternative.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActiveOrder is one row of the staff work queue.
type ActiveOrder struct {
	ID                  int64  `json:"id"`
	ClientRef           string `json:"clientRef"`
	Status              int    `json:"status"`
	FreightMode         string `json:"freightMode"`
	FinalCharge         string `json:"finalCharge,omitempty"`
	BoxID               *int64 `json:"boxId,omitempty"`
	AlternativeProposal bool   `json:"alternativeProposal"`
}

// GetActiveOrders handles GET /api/v1/orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	rows, err := s.handlers.ActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ActiveOrder, 0, len(rows))
	for _, row := range rows {
		item := ActiveOrder{
			ID:                  row.ID.Int64(),
			ClientRef:           row.ClientRef,
			Status:              row.Status,
			FreightMode:         row.FreightMode,
			FinalCharge:         row.FinalCharge,
			AlternativeProposal: row.AlternativeProposal,
		}
		if row.BoxID != nil {
			raw := row.BoxID.Int64()
			item.BoxID = &raw
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseDimensions(body Quote) (kernel.Dimensions, error) {
	parse := func(name, raw string) (decimal.Decimal, error) {
		if raw == "" {
			return decimal.Zero, nil
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		return value, nil
	}

	height, err := parse("heightCm", body.HeightCm)
	if err != nil {
		return kernel.Dimensions{}, err
	}
	width, err := parse("widthCm", body.WidthCm)
	if err != nil {
		return kernel.Dimensions{}, err
	}
	length, err := parse("lengthCm", body.LengthCm)
	if err != nil {
		return kernel.Dimensions{}, err
	}
	weight, err := parse("weightKg", body.WeightKg)
	if err != nil {
		return kernel.Dimensions{}, err
	}

	return kernel.NewDimensions(height, width, length, weight)
}
