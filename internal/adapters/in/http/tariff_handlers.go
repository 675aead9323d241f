package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// TariffView is the JSON form of the pricing configuration. Rates travel as
// decimal strings to keep full precision.
type TariffView struct {
	AirRatePerKg         string    `json:"airRatePerKg"`
	SeaRatePerCubicMeter string    `json:"seaRatePerCubicMeter"`
	MarginPercent        string    `json:"marginPercent"`
	FxRateUSD            string    `json:"fxRateUsd"`
	FxRateCNY            string    `json:"fxRateCny"`
	AutoUpdateFiat       bool      `json:"autoUpdateFiat"`
	AutoUpdateStablecoin bool      `json:"autoUpdateStablecoin"`
	Version              int64     `json:"version"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// TariffPatch carries the fields a PATCH request intends to change. Absent
// fields leave the stored values alone.
type TariffPatch struct {
	AirRatePerKg         *string `json:"airRatePerKg"`
	SeaRatePerCubicMeter *string `json:"seaRatePerCubicMeter"`
	MarginPercent        *string `json:"marginPercent"`
	FxRateUSD            *string `json:"fxRateUsd"`
	FxRateCNY            *string `json:"fxRateCny"`
	AutoUpdateFiat       *bool   `json:"autoUpdateFiat"`
	AutoUpdateStablecoin *bool   `json:"autoUpdateStablecoin"`
}

// GetTariffs handles GET /api/v1/tariffs.
func (s *Server) GetTariffs(ctx echo.Context) error {
	current, err := s.handlers.Tariffs.Get(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tariffView(current))
}

// PatchTariffs handles PATCH /api/v1/tariffs.
func (s *Server) PatchTariffs(ctx echo.Context) error {
	var body TariffPatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch, err := parsePatch(body)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewPatchTariffsCommand(patch)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.handlers.PatchTariffs.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tariffView(updated))
}

// RateRefresh is the request body for a manual rate refresh. Manual
// refreshes bypass the auto-update toggles.
type RateRefresh struct {
	Kind string `json:"kind"`
	Side string `json:"side"`
}

// RefreshRates handles POST /api/v1/rates/refresh.
func (s *Server) RefreshRates(ctx echo.Context) error {
	var body RateRefresh
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRefreshRatesCommand(
		ports.RateKind(body.Kind), ports.RateSide(body.Side), true)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RefreshRates.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func tariffView(t tariff.Tariff) TariffView {
	return TariffView{
		AirRatePerKg:         t.AirRatePerKg.String(),
		SeaRatePerCubicMeter: t.SeaRatePerCubicMeter.String(),
		MarginPercent:        t.MarginPercent.String(),
		FxRateUSD:            t.FxRateUSD.String(),
		FxRateCNY:            t.FxRateCNY.String(),
		AutoUpdateFiat:       t.AutoUpdateFiat,
		AutoUpdateStablecoin: t.AutoUpdateStablecoin,
		Version:              t.Version,
		UpdatedAt:            t.UpdatedAt,
	}
}

func parsePatch(body TariffPatch) (tariff.Patch, error) {
	var patch tariff.Patch

	parse := func(name string, raw *string, target **decimal.Decimal) error {
		if raw == nil {
			return nil
		}
		value, err := decimal.NewFromString(*raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		*target = &value
		return nil
	}

	if err := parse("airRatePerKg", body.AirRatePerKg, &patch.AirRatePerKg); err != nil {
		return tariff.Patch{}, err
	}
	if err := parse("seaRatePerCubicMeter", body.SeaRatePerCubicMeter, &patch.SeaRatePerCubicMeter); err != nil {
		return tariff.Patch{}, err
	}
	if err := parse("marginPercent", body.MarginPercent, &patch.MarginPercent); err != nil {
		return tariff.Patch{}, err
	}
	if err := parse("fxRateUsd", body.FxRateUSD, &patch.FxRateUSD); err != nil {
		return tariff.Patch{}, err
	}
	if err := parse("fxRateCny", body.FxRateCNY, &patch.FxRateCNY); err != nil {
		return tariff.Patch{}, err
	}

	patch.AutoUpdateFiat = body.AutoUpdateFiat
	patch.AutoUpdateStablecoin = body.AutoUpdateStablecoin
	return patch, nil
}
