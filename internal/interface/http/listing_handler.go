package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/avisoslab/avisos-api/internal/application"
	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
	"github.com/avisoslab/avisos-api/pkg/response"
	"github.com/avisoslab/avisos-api/pkg/validation"
)

type ListingHandler struct {
	Svc    *application.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

type listingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CompanyID   string `json:"company_id" binding:"required,uuid"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
}

func (r *listingRequest) input() application.ListingInput {
	return application.ListingInput{
		Title:       r.Title,
		Description: r.Description,
		CompanyID:   r.CompanyID,
		Location:    r.Location,
		Salary:      r.Salary,
	}
}

func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list listings failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	out := make([]gin.H, 0, len(listings))
	for _, l := range listings {
		out = append(out, listingJSON(l))
	}
	response.Success(c, http.StatusOK, "listings", gin.H{"avisos": out})
}

func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get listing failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "listing", gin.H{"aviso": listingJSON(l)})
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		h.Logger.WithError(err).Error("create listing failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, "listing created", gin.H{"aviso": listingJSON(l)})
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update listing failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "listing updated", gin.H{"aviso": listingJSON(l)})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete listing failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "listing deleted", nil)
}

func listingJSON(l *entity.Listing) gin.H {
	return gin.H{
		"id":          l.ID,
		"title":       l.Title,
		"description": l.Description,
		"company_id":  l.CompanyID,
		"location":    l.Location,
		"salary":      l.Salary,
		"created_at":  l.CreatedAt,
		"updated_at":  l.UpdatedAt,
	}
}
