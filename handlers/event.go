package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	eventRepo "petalflow/database/repository/event"
	inspirationRepo "petalflow/database/repository/inspiration"
	"petalflow/models"
	"petalflow/services/storage"
	"petalflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler serves persisted event data: the auto-save targets, the
// completion snapshot, and inspiration images.
type EventHandler struct {
	Events       eventRepo.EventRepository
	Inspirations inspirationRepo.InspirationRepository
	Storage      storage.StorageService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventRepo.EventRepository, inspirations inspirationRepo.InspirationRepository, storageSvc storage.StorageService) *EventHandler {
	return &EventHandler{Events: events, Inspirations: inspirations, Storage: storageSvc}
}

func eventIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("eventID"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event id", c.Param("eventID"))
		return 0, false
	}
	return id, true
}

// GetSnapshotHandler returns the finalized wizard record.
func (h *EventHandler) GetSnapshotHandler(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	snapshot, err := h.Events.GetSnapshot(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event snapshot not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

// GetColorsHandler returns the event's saved color selections.
func (h *EventHandler) GetColorsHandler(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	colors, err := h.Events.GetColors(eventID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve event colors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get colors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": colors})
}

// GetArrangementsHandler returns the event's saved arrangement selections.
func (h *EventHandler) GetArrangementsHandler(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	arrangements, err := h.Events.GetArrangements(eventID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve event arrangements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get arrangements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"arrangements": arrangements})
}

// ListInspirationsHandler lists inspiration images attached to the event.
func (h *EventHandler) ListInspirationsHandler(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	inspirations, err := h.Inspirations.ListByEvent(eventID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve inspirations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inspirations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inspirations": inspirations})
}

// AddInspirationHandler appends an inspiration: either a pasted URL (JSON
// body) or an uploaded file (multipart form with an "image" part).
func (h *EventHandler) AddInspirationHandler(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	inspiration := &models.Inspiration{
		ID:      uuid.New().String(),
		EventID: eventID,
	}

	if file, err := c.FormFile("image"); err == nil {
		if h.Storage == nil {
			utils.JSONError(c, http.StatusServiceUnavailable, "uploads unavailable", "image storage is not configured")
			return
		}
		tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "upload failed", err.Error())
			return
		}
		defer os.Remove(tmpPath)

		publicID, err := h.Storage.UploadImage(c.Request.Context(), tmpPath, "inspirations")
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, "upload failed", err.Error())
			return
		}
		url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 24*time.Hour)
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, "upload failed", err.Error())
			return
		}
		inspiration.URL = url
		inspiration.Source = "upload"
	} else {
		var input struct {
			URL string `json:"url" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "provide an image file or a url")
			return
		}
		inspiration.URL = input.URL
		inspiration.Source = "link"
	}

	if err := h.Inspirations.Create(inspiration); err != nil {
		getLogger(c).Error("Failed to save inspiration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inspiration"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inspiration": inspiration})
}

// DeleteInspirationHandler removes an inspiration by id.
func (h *EventHandler) DeleteInspirationHandler(c *gin.Context) {
	if _, ok := eventIDParam(c); !ok {
		return
	}
	if err := h.Inspirations.Delete(c.Param("inspirationID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspiration not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inspiration deleted"})
}
