package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/filter"
	"github.com/shenikar/safemap/internal/models"
	"github.com/shenikar/safemap/internal/records"
	"github.com/shenikar/safemap/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	personService service.MissingPersonService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(personService service.MissingPersonService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		personService: personService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary List missing persons
// @Description Get a filtered, paginated list of records, newest first. Requires API key.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tab query string false "Status tab" Enums(all, missing, resolved, location_unknown)
// @Param days query int false "Relative window in days" default(30)
// @Param start_date query string false "Explicit range start (YYYY-MM-DD)"
// @Param end_date query string false "Explicit range end (YYYY-MM-DD)"
// @Param gender query string false "Gender" Enums(M, F)
// @Param age_min query int false "Minimum age"
// @Param age_max query int false "Maximum age"
// @Param has_disability query bool false "Disability flag"
// @Param limit query int false "Page size" default(100)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} ListResponse
// @Failure 400 {object} map[string]string "Invalid filter combination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missing-persons [get]
func (h *Handler) listMissingPersons(c *gin.Context) {
	var input ListQuery
	log := h.logger.WithField("method", "listMissingPersons")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tab, criteria := QueryToFilter(input.FilterQuery)
	result, err := h.personService.List(c.Request.Context(), tab, input.Days, criteria,
		models.Page{Limit: input.Limit, Offset: input.Skip})
	if err != nil {
		h.writeServiceError(c, log, err, "Failed to list missing persons from service")
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Total:             result.Total,
		Items:             ModelsToMissingPersonResponses(result.Items),
		ActiveFilterCount: result.ActiveFilterCount,
	})
}

// @Summary Get danger zones
// @Description Aggregate missing records with coordinates into grid-based danger zones. Requires API key.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tab query string false "Status tab" Enums(all, missing, resolved, location_unknown)
// @Param days query int false "Relative window in days" default(30)
// @Param start_date query string false "Explicit range start (YYYY-MM-DD)"
// @Param end_date query string false "Explicit range end (YYYY-MM-DD)"
// @Param gender query string false "Gender" Enums(M, F)
// @Param age_min query int false "Minimum age"
// @Param age_max query int false "Maximum age"
// @Param has_disability query bool false "Disability flag"
// @Success 200 {object} ZonesResponse
// @Failure 400 {object} map[string]string "Invalid filter combination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missing-persons/zones [get]
func (h *Handler) dangerZones(c *gin.Context) {
	var input ZonesQuery
	log := h.logger.WithField("method", "dangerZones")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tab, criteria := QueryToFilter(input.FilterQuery)
	zones, err := h.personService.DangerZones(c.Request.Context(), tab, input.Days, criteria)
	if err != nil {
		h.writeServiceError(c, log, err, "Failed to compute danger zones in service")
		return
	}

	c.JSON(http.StatusOK, ZonesResponse{Zones: ModelsToDangerZoneResponses(zones)})
}

// @Summary Get statistics
// @Description Get summary statistics for the last N days. Requires API key.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Period in days" default(30)
// @Success 200 {object} models.Stats
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missing-persons/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	var input StatsQuery
	log := h.logger.WithField("method", "getStats")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.personService.Stats(c.Request.Context(), input.Days)
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Get database summary
// @Description Get record totals, geocoding progress and the date range of the whole database. Requires API key.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DatabaseSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missing-persons/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	summary, err := h.personService.Summary(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get database summary from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Import records
// @Description Import records from a JSON array or an {total, items} envelope. Requires API key.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param records body []models.MissingPerson true "Records to import"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missing-persons/import [post]
func (h *Handler) importRecords(c *gin.Context) {
	log := h.logger.WithField("method", "importRecords")

	data, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	imported, err := h.personService.Import(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, records.ErrInvalidPayload) {
			log.WithError(err).Warn("Invalid import payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		log.WithError(err).Error("Failed to import records in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Imported: imported})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	if errors.Is(err, filter.ErrInvalidFilterCombination) {
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
