package handlers

import (
	"net/http"

	"petalflow/services/vendors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorHandler serves vendor resolution and catalog reads.
type VendorHandler struct {
	Service vendors.VendorService
}

// NewVendorHandler creates a VendorHandler.
func NewVendorHandler(svc vendors.VendorService) *VendorHandler {
	return &VendorHandler{Service: svc}
}

// GetVendorBySlugHandler resolves a vendor storefront by slug.
func (h *VendorHandler) GetVendorBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	vendor, err := h.Service.GetVendorBySlug(slug)
	if err != nil {
		getLogger(c).Warn("Vendor not found", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// GetEventTypesHandler returns a vendor's event types or the defaults.
func (h *VendorHandler) GetEventTypesHandler(c *gin.Context) {
	result, err := h.Service.GetEventTypes(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event types"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetArrangementsHandler lists a vendor's arrangements.
func (h *VendorHandler) GetArrangementsHandler(c *gin.Context) {
	arrangements, err := h.Service.GetArrangements(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to retrieve arrangements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get arrangements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"arrangements": arrangements})
}

// GetArrangementTypesHandler lists a vendor's arrangement groupings.
func (h *VendorHandler) GetArrangementTypesHandler(c *gin.Context) {
	types, err := h.Service.GetArrangementTypes(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to retrieve arrangement types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get arrangement types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"arrangementTypes": types})
}

// GetColorsHandler lists a vendor's selectable colors.
func (h *VendorHandler) GetColorsHandler(c *gin.Context) {
	colors, err := h.Service.GetColors(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to retrieve colors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get colors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": colors})
}

// GetFlowersHandler lists a vendor's flower catalog.
func (h *VendorHandler) GetFlowersHandler(c *gin.Context) {
	flowers, err := h.Service.GetFlowers(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to retrieve flowers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flowers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flowers": flowers})
}
