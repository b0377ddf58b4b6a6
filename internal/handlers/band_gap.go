package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgCalculationOK    = "Calculation successful"
	errInsufficientData = "Not enough valid data points for calculation (need at least 2 non-zero current readings)."
	errFitPrefix        = "Linear fit failed: "
	errPlotRender       = "failed to render plot"
)

type regressionPoints struct {
	InvT []float64 `json:"inv_T"`
	LnI  []float64 `json:"ln_I"`
}

type bandGapResponse struct {
	Message          string           `json:"message" example:"Calculation successful"`
	BandGapEV        float64          `json:"band_gap_eV"`
	RSquared         float64          `json:"r_squared"`
	SlopeValue       float64          `json:"slope_value"`
	InterceptValue   float64          `json:"intercept_value"`
	PointsUsed       int              `json:"points_used"`
	ReadingsTotal    int              `json:"readings_total"`
	RegressionPoints regressionPoints `json:"regression_points"`
}

func newBandGapResponse(res models.BandGapResult) bandGapResponse {
	invT, lnI := res.Columns()
	return bandGapResponse{
		Message:          msgCalculationOK,
		BandGapEV:        res.BandGapEV,
		RSquared:         res.RSquared,
		SlopeValue:       res.Slope,
		InterceptValue:   res.Intercept,
		PointsUsed:       res.Used,
		ReadingsTotal:    res.Total,
		RegressionPoints: regressionPoints{InvT: invT, LnI: lnI},
	}
}

// respondEstimateError maps estimator failures: too few points is the
// caller's problem (400), anything numerical or storage-related is 500.
func (h *Handler) respondEstimateError(c *gin.Context, err error) {
	var fitErr *service.FitError
	switch {
	case errors.Is(err, service.ErrInsufficientData):
		c.JSON(http.StatusBadRequest, errorResponse{Error: errInsufficientData})
	case errors.As(err, &fitErr):
		h.logAndJSONError(c, http.StatusInternalServerError, errFitPrefix+fitErr.Error(), "band_gap_fit_failed", err)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errListReadings, "band_gap_failed", err)
	}
}

// @Summary      Calculate band gap
// @Description  Fits ln(I) against 1/T over readings with current > 1e-9 A. Eg = -2·k_B·slope.
// @Tags         band-gap
// @Produce      json
// @Success      200  {object}  bandGapResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/calculate_band_gap [get]
func (h *Handler) calculateBandGap(c *gin.Context) {
	res, err := h.services.Estimate(c.Request.Context())
	if err != nil {
		h.respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBandGapResponse(res))
}

// @Summary      Regression plot
// @Tags         band-gap
// @Produce      png
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/band_gap_plot.png [get]
func (h *Handler) bandGapPlot(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := h.services.RenderPNG(c.Request.Context(), &buf); err != nil {
		var fitErr *service.FitError
		if errors.Is(err, service.ErrInsufficientData) || errors.As(err, &fitErr) {
			h.respondEstimateError(c, err)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errPlotRender, "band_gap_plot_failed", err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
