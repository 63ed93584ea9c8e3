package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/presentation_gateway/internal/domain"
	"github.com/locvowork/presentation_gateway/internal/logger"
	"github.com/locvowork/presentation_gateway/internal/service"
	"github.com/locvowork/presentation_gateway/internal/service/serviceutils"
	"github.com/locvowork/presentation_gateway/pkg/thinkcell"
)

// PPTTCContentType is the media type used when returning ppttc documents.
// think-cell files are plain JSON; the suffix makes that explicit.
const PPTTCContentType = "application/vnd.think-cell.ppttc+json"

type PresentationHandler struct {
	svc service.PresentationService
}

func NewPresentationHandler(svc service.PresentationService) *PresentationHandler {
	return &PresentationHandler{svc: svc}
}

// BuildHandler handles POST /presentations: it builds the requested slides
// and returns the ppttc document as a download.
func (h *PresentationHandler) BuildHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.PresentationRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}

	payload, err := h.svc.Build(ctx, &req)
	if err != nil {
		logger.ErrorLog(ctx, "build presentation: %v", err)
		return serviceutils.ResponseError(c, statusForBuildError(err), "failed to build presentation", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="presentation.ppttc"`)
	return c.Blob(http.StatusOK, PPTTCContentType, payload)
}

// BuildFromQueryHandler handles POST /presentations/from-query: it runs the
// given SQL query and renders the result set as a single chart.
func (h *PresentationHandler) BuildFromQueryHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.QueryChartRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}

	payload, err := h.svc.BuildChartFromQuery(ctx, &req)
	if err != nil {
		logger.ErrorLog(ctx, "build chart from query: %v", err)
		if errors.Is(err, service.ErrDatabaseUnavailable) {
			return serviceutils.ResponseError(c, http.StatusServiceUnavailable, "database is not configured", err)
		}
		return serviceutils.ResponseError(c, statusForBuildError(err), "failed to build chart", err)
	}

	filename := fmt.Sprintf("%s.ppttc", req.Name)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, PPTTCContentType, payload)
}

// HealthHandler handles GET /healthz.
func (h *PresentationHandler) HealthHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "ok", nil)
}

// statusForBuildError maps builder error kinds onto HTTP statuses. Everything
// the caller can fix (bad values, bad shapes, bad paths, bad frames) is a 400;
// the rest is a 500.
func statusForBuildError(err error) int {
	var (
		valueErr *thinkcell.InvalidValueTypeError
		shapeErr *thinkcell.InvalidShapeError
		frameErr *thinkcell.DataFrameError
	)
	switch {
	case errors.As(err, &valueErr),
		errors.As(err, &shapeErr),
		errors.As(err, &frameErr),
		errors.Is(err, thinkcell.ErrInvalidTemplate),
		errors.Is(err, thinkcell.ErrNoSlides),
		errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
