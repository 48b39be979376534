package api

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mentionwatch/internal/domain"
	"mentionwatch/internal/service"
)

// maxImportSize bounds uploaded workbook size.
const maxImportSize = 10 << 20

type CompanyService interface {
	List(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type ImportService interface {
	ImportCompanies(ctx context.Context, data []byte) (*service.ImportResult, error)
}

type CompanyHandler struct {
	companies CompanyService
	importer  ImportService
}

func NewCompanyHandler(companies CompanyService, importer ImportService) *CompanyHandler {
	return &CompanyHandler{companies: companies, importer: importer}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(companies), "companies": companies})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	company, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
		return
	}

	if err := h.companies.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.companies.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Import serves POST /api/companies/import with an xlsx upload in the
// "file" form field.
func (h *CompanyHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "workbook too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWith(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		abortWith(c, err)
		return
	}

	result, err := h.importer.ImportCompanies(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return 0, false
	}
	return id, true
}
