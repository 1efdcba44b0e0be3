package handlers

import (
	"errors"
	"net/http"
	"time"

	"petalflow/models"
	"petalflow/services/onboarding"
	"petalflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OnboardingHandler exposes the wizard session engine over HTTP.
type OnboardingHandler struct {
	Service onboarding.OnboardingService
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Service: svc}
}

// respondError maps service errors onto HTTP responses. Validation failures
// carry their field list; everything else is a message plus details.
func respondError(c *gin.Context, err error) {
	var vErr *onboarding.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  vErr.Fields,
		})
		return
	}
	var nErr *onboarding.NavigationError
	if errors.As(err, &nErr) {
		c.JSON(http.StatusConflict, gin.H{"message": nErr.Message})
		return
	}
	switch {
	case errors.Is(err, onboarding.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", "the onboarding session does not exist or has expired")
	case errors.Is(err, onboarding.ErrVendorUnavailable):
		utils.JSONError(c, http.StatusNotFound, "Vendor unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", err.Error())
	}
}

// MountSessionHandler creates a new wizard session for a vendor.
func (h *OnboardingHandler) MountSessionHandler(c *gin.Context) {
	var input struct {
		VendorSlug string `json:"vendorSlug" binding:"required"`
		Variant    string `json:"variant"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.MountSession(input.VendorSlug, input.Variant)
	if err != nil {
		respondError(c, err)
		return
	}

	resumeToken, err := utils.GenerateResumeToken(session.SessionID, session.VendorSlug, 24*time.Hour)
	if err != nil {
		getLogger(c).Warn("failed to issue resume token", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":     session,
		"resumeToken": resumeToken,
	})
}

// ResumeSessionHandler re-attaches a reloaded tab to its session using the
// signed resume token issued at mount.
func (h *OnboardingHandler) ResumeSessionHandler(c *gin.Context) {
	var input struct {
		ResumeToken string `json:"resumeToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionID, _, err := utils.ParseResumeToken(input.ResumeToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid resume token", err.Error())
		return
	}

	session, err := h.Service.GetSession(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSessionHandler returns the current session snapshot.
func (h *OnboardingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSessionHandler shallow-merges answer fields into the session.
func (h *OnboardingHandler) UpdateSessionHandler(c *gin.Context) {
	var update models.SessionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Param("sessionID"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// NextStepHandler advances the wizard one step.
func (h *OnboardingHandler) NextStepHandler(c *gin.Context) {
	session, err := h.Service.NextStep(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PrevStepHandler moves back one step.
func (h *OnboardingHandler) PrevStepHandler(c *gin.Context) {
	session, err := h.Service.PrevStep(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GoToStepHandler jumps directly to a step.
func (h *OnboardingHandler) GoToStepHandler(c *gin.Context) {
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.GoToStep(c.Param("sessionID"), input.Step)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CreateInquiryHandler runs the idempotent inquiry-creation gate.
func (h *OnboardingHandler) CreateInquiryHandler(c *gin.Context) {
	resp, err := h.Service.CreateInquiry(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AcknowledgeConfirmationHandler dismisses the one-time confirmation.
// Action "review" jumps straight to the final step.
func (h *OnboardingHandler) AcknowledgeConfirmationHandler(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Action != onboarding.ConfirmationActionContinue && input.Action != onboarding.ConfirmationActionReview {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "action must be \"continue\" or \"review\"")
		return
	}

	session, err := h.Service.AcknowledgeConfirmation(c.Param("sessionID"), input.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitHandler finalizes the wizard from the terminal step.
func (h *OnboardingHandler) SubmitHandler(c *gin.Context) {
	session, err := h.Service.SubmitWizard(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ResetHandler discards the run so "plan another event" starts clean.
func (h *OnboardingHandler) ResetHandler(c *gin.Context) {
	if err := h.Service.ResetSession(c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cleared"})
}

// SaveColorsHandler queues a debounced color-selection save.
func (h *OnboardingHandler) SaveColorsHandler(c *gin.Context) {
	var input struct {
		ColorScheme    string              `json:"colorScheme"`
		SelectedColors map[string][]string `json:"selectedColors"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.QueueColorSave(c.Param("sessionID"), input.ColorScheme, input.SelectedColors); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "save queued"})
}

// SaveArrangementsHandler queues debounced arrangement quantity changes.
func (h *OnboardingHandler) SaveArrangementsHandler(c *gin.Context) {
	var input struct {
		Updates []models.ArrangementUpdate `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	for _, u := range input.Updates {
		if u.Action != models.ArrangementActionUpsert && u.Action != models.ArrangementActionDelete {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "action must be \"upsert\" or \"delete\"")
			return
		}
	}

	if err := h.Service.QueueArrangementSave(c.Param("sessionID"), input.Updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "save queued"})
}

// SaveStatusHandler reports per-target auto-save state.
func (h *OnboardingHandler) SaveStatusHandler(c *gin.Context) {
	status, err := h.Service.SaveStatus(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"targets": status})
}
