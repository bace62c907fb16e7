package handlers

import (
	"net/http"

	"decorly/models"
	"decorly/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the public catalog and admin listing endpoints.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogSvc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: catalogSvc, Logger: logger}
}

// ListHomeServices handles GET /api/services.
func (h *CatalogHandler) ListHomeServices(c *gin.Context) {
	services, err := h.CatalogSvc.ListHomeServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListHomeServices failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetHomeService handles GET /api/services/:id.
func (h *CatalogHandler) GetHomeService(c *gin.Context) {
	id := c.Param("id")

	service, err := h.CatalogSvc.GetHomeService(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetHomeService failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service)
}

// ListServices handles GET /api/admin/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/admin/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	created, err := h.CatalogSvc.CreateService(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("CreateService failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateService handles PATCH /api/admin/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var upd models.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.CatalogSvc.UpdateService(c.Request.Context(), id, upd); err != nil {
		h.Logger.Error("UpdateService failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// DeleteService handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")

	if err := h.CatalogSvc.DeleteService(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeleteService failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
