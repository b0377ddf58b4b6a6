package handlers

import (
	"errors"
	"net/http"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK         = "ok"
	msgDataLogged    = "Data logged successfully"
	errLogDataPrefix = "Failed to log data: "
	errListReadings  = "failed to load readings"
)

type logDataResponse struct {
	Message string `json:"message" example:"Data logged successfully"`
	ID      int    `json:"id" example:"0"`
}

type allDataResponse struct {
	Data  []models.Reading `json:"data"`
	Count int              `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// logAndJSONError logs err under logKey and writes {"error": userMsg}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, errorResponse{Error: userMsg})
}

// validationStatus is the status for a rejected reading payload.
func (h *Handler) validationStatus() int {
	if h.opts.LegacyStatusCodes {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Log a reading
// @Description  temperature (°C), current (A) and voltage (V) may be numbers or numeric strings. Validation failures return 400 (500 with api.legacy_status_codes).
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body      models.RawReading  true  "Reading"
// @Success      201   {object}  logDataResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/log_data [post]
func (h *Handler) logData(c *gin.Context) {
	var raw models.RawReading
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.log.Infow("log_data_bad_body", "err", err, "request_id", c.GetString(requestIDKey))
		c.JSON(h.validationStatus(), errorResponse{Error: errLogDataPrefix + err.Error()})
		return
	}

	reading, err := h.services.LogReading(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReading) {
			h.log.Infow("log_data_invalid", "err", err, "request_id", c.GetString(requestIDKey))
			c.JSON(h.validationStatus(), errorResponse{Error: errLogDataPrefix + err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLogDataPrefix+err.Error(), "log_data_failed", err)
		return
	}

	h.log.Infow("reading_logged",
		"id", reading.ID,
		"temperature_c", reading.Temperature,
		"current_a", reading.Current,
	)
	c.JSON(http.StatusCreated, logDataResponse{Message: msgDataLogged, ID: reading.ID})
}

// @Summary      List all readings
// @Tags         readings
// @Produce      json
// @Success      200  {object}  allDataResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/get_all_data [get]
func (h *Handler) getAllData(c *gin.Context) {
	readings, err := h.services.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListReadings, "get_all_data_failed", err)
		return
	}
	c.JSON(http.StatusOK, allDataResponse{Data: readings, Count: len(readings)})
}
