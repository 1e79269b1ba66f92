package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для работы с записями о пропавших, требуют API-ключ
	persons := api.Group("/missing-persons", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		persons.GET("", h.listMissingPersons)
		persons.GET("/zones", h.dangerZones)
		persons.GET("/stats", h.getStats)
		persons.GET("/summary", h.getSummary)
		persons.POST("/import", h.importRecords)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
