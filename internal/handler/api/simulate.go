package api

import (
	"StackSim/internal/domain/models"
	domrepo "StackSim/internal/domain/repository"
	"StackSim/internal/service/ratelimit"
	"StackSim/internal/usecase"
	xhttp "StackSim/pkg/http"
	xlogger "StackSim/pkg/logger"
	"StackSim/pkg/util"

	"github.com/labstack/echo/v4"
)

// SimulateHandler exposes the DCA comparison simulation over HTTP.
type SimulateHandler struct {
	logger  *xlogger.Logger
	sim     *usecase.Simulation
	rl      *ratelimit.Limiter
	archive domrepo.PriceArchive // may be nil, health-only

	rlCapacity float64
	rlRefill   float64
}

func NewSimulateHandler(logger *xlogger.Logger, sim *usecase.Simulation, archive domrepo.PriceArchive, rlCapacity, rlRefill float64) *SimulateHandler {
	if rlCapacity <= 0 {
		rlCapacity = 5
	}
	if rlRefill <= 0 {
		rlRefill = 1
	}
	return &SimulateHandler{
		logger:     logger,
		sim:        sim,
		rl:         ratelimit.New(),
		archive:    archive,
		rlCapacity: rlCapacity,
		rlRefill:   rlRefill,
	}
}

func (h *SimulateHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/simulate", h.Simulate)
	g.POST("/simulate", h.Simulate)
	g.GET("/health", h.Health)
}

func (h *SimulateHandler) Simulate(c echo.Context) error {
	if !h.rl.Allow(c.RealIP()+":simulate", h.rlCapacity, h.rlRefill) {
		h.logger.Warn("simulate rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many simulations, slow down"))
	}

	req := &models.SimulateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	params, appErr := runParamsFrom(req)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	report, err := h.sim.Run(c.Request().Context(), params)
	if err != nil {
		h.logger.Error("simulation error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}

	return xhttp.SuccessResponse(c, report)
}

// runParamsFrom converts the validated wire request into run parameters,
// enforcing the date-ordering preconditions the field validators cannot see.
func runParamsFrom(req *models.SimulateRequest) (usecase.RunParams, *xhttp.AppError) {
	start, ok := util.ParseDate(req.StartDate)
	if !ok {
		return usecase.RunParams{}, xhttp.BadRequestError("start_date must be a calendar date")
	}
	end, ok := util.ParseDate(req.EndDate)
	if !ok {
		return usecase.RunParams{}, xhttp.BadRequestError("end_date must be a calendar date")
	}
	future, ok := util.ParseDate(req.FutureDate)
	if !ok {
		return usecase.RunParams{}, xhttp.BadRequestError("future_date must be a calendar date")
	}

	if !start.Before(end) {
		return usecase.RunParams{}, xhttp.BadRequestError("start_date must be before end_date")
	}
	if !future.After(end) {
		return usecase.RunParams{}, xhttp.BadRequestError("future_date must be after end_date")
	}

	freq := domrepo.NormalizeFrequency(req.Frequency)
	cadenceDay := req.DayOfMonth
	if freq == domrepo.Weekly {
		cadenceDay = req.Weekday
	}

	return usecase.RunParams{
		Start:       start,
		End:         end,
		FutureDate:  future,
		Amount:      req.Amount,
		Frequency:   freq,
		CadenceDay:  cadenceDay,
		FuturePrice: req.FuturePrice,
	}, nil
}

func (h *SimulateHandler) Health(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if h.archive != nil {
		if err := h.archive.Health(c.Request().Context()); err != nil {
			status["archive"] = "unreachable"
		} else {
			status["archive"] = "ok"
		}
	}
	return xhttp.SuccessResponse(c, status)
}
