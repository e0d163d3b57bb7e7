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

type CompanyHandler struct {
	Svc    *application.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

type companyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website" binding:"omitempty,url"`
}

func (r *companyRequest) input() application.CompanyInput {
	return application.CompanyInput{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list companies failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	out := make([]gin.H, 0, len(companies))
	for _, co := range companies {
		out = append(out, companyJSON(co))
	}
	response.Success(c, http.StatusOK, "companies", gin.H{"empresas": out})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	co, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "company not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get company failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "company", gin.H{"empresa": companyJSON(co)})
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	co, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		h.Logger.WithError(err).Error("create company failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, "company created", gin.H{"empresa": companyJSON(co)})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	co, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "company not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update company failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "company updated", gin.H{"empresa": companyJSON(co)})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "company not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete company failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, "company deleted", nil)
}

func companyJSON(co *entity.Company) gin.H {
	return gin.H{
		"id":          co.ID,
		"name":        co.Name,
		"description": co.Description,
		"website":     co.Website,
		"created_at":  co.CreatedAt,
		"updated_at":  co.UpdatedAt,
	}
}
