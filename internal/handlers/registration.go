package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/internal/models"
	"github.com/adventcare/registry-backend/internal/services"
	apperrors "github.com/adventcare/registry-backend/pkg/errors"
)

// RegistrationHandler serves the public intake endpoint and the admin
// moderation endpoints.
type RegistrationHandler struct {
	service *services.RegistrationService
	logger  *logrus.Logger
}

func NewRegistrationHandler(service *services.RegistrationService, logger *logrus.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		logger:  logger,
	}
}

// Register handles POST /api/v1/registrations
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, models.NewBadRequestError("Invalid request body"))
		return
	}

	registration, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    registration,
		"message": "Registration submitted successfully",
	})
}

// GetApproved handles GET /api/v1/registrations/approved. The approved
// directory is public and changes slowly, so responses carry a short
// shared-cache hint.
func (h *RegistrationHandler) GetApproved(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, lerr := h.service.ListByStatus(c.Request.Context(), models.StatusApproved, limit, offset)
	if lerr != nil {
		respondError(c, h.logger, lerr)
		return
	}

	c.Header("Cache-Control", "s-maxage=60, stale-while-revalidate=300")
	respondPage(c, page)
}

// GetPending handles GET /api/v1/registrations/pending (admin only)
func (h *RegistrationHandler) GetPending(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, lerr := h.service.ListByStatus(c.Request.Context(), models.StatusPending, limit, offset)
	if lerr != nil {
		respondError(c, h.logger, lerr)
		return
	}

	respondPage(c, page)
}

// UpdateStatus handles POST /api/v1/registrations/status (admin only)
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, models.NewBadRequestError("Invalid request body"))
		return
	}

	updated, err := h.service.SetStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Registration " + updated.Status + " successfully",
	})
}

// parsePagination reads limit/offset query parameters with the intake
// defaults. Range checks live in the service; only unparseable values are
// rejected here.
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit = services.DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, models.NewInvalidLimitError()
		}
	}

	offset = 0
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, models.NewInvalidOffsetError()
		}
	}

	return limit, offset, nil
}

func respondPage(c *gin.Context, page *models.RegistrationPage) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       page.Items,
		"pagination": page.Pagination,
	})
}

// respondError writes the structured error envelope. Anything that is not
// an AppError is a programming error and maps to a generic 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *models.AppError
	if !apperrors.As(err, &appErr) {
		appErr = models.NewInternalError("Internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.WithError(err).WithField("code", appErr.Code).Error("Request failed")
	}

	body := gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}

	c.JSON(appErr.StatusCode, body)
}
