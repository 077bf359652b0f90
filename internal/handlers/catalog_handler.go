package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"gorm.io/gorm"
)

// CatalogHandler serves organizations, products and services
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{
		catalogService: services.NewCatalogService(
			repository.NewOrganizationRepository(db),
			repository.NewProductRepository(db),
			repository.NewServiceRepository(db),
		),
	}
}

// CatalogService exposes the service so generation can resolve campaign focus
func (h *CatalogHandler) CatalogService() *services.CatalogService {
	return h.catalogService
}

// ListOrganizations godoc
// @Summary List organizations
// @Description List every organization ordered by name
// @Tags organizations
// @Produce json
// @Success 200 {array} models.Organization
// @Failure 500 {object} map[string]interface{}
// @Router /api/organizations [get]
func (h *CatalogHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.catalogService.ListOrganizations()
	if err != nil {
		respondRepoError(c, err, "Organization")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetOrganization godoc
// @Summary Get organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} models.Organization
// @Failure 404 {object} map[string]interface{}
// @Router /api/organizations/{id} [get]
func (h *CatalogHandler) GetOrganization(c *gin.Context) {
	org, err := h.catalogService.GetOrganization(c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// CreateOrganization godoc
// @Summary Create organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body models.CreateOrganizationRequest true "Organization"
// @Success 201 {object} models.Organization
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/organizations [post]
func (h *CatalogHandler) CreateOrganization(c *gin.Context) {
	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	org, err := h.catalogService.CreateOrganization(&req)
	if err != nil {
		respondRepoError(c, err, "Organization")
		return
	}
	c.JSON(http.StatusCreated, org)
}

// UpdateOrganization godoc
// @Summary Update organization
// @Description Partial update; unknown columns are rejected
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.Organization
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/organizations/{id} [patch]
func (h *CatalogHandler) UpdateOrganization(c *gin.Context) {
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	org, err := h.catalogService.UpdateOrganization(c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// DeleteOrganization godoc
// @Summary Delete organization
// @Description Deletes the organization with its products and services
// @Tags organizations
// @Param id path string true "Organization ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/organizations/{id} [delete]
func (h *CatalogHandler) DeleteOrganization(c *gin.Context) {
	if err := h.catalogService.DeleteOrganization(c.Param("id")); err != nil {
		respondRepoError(c, err, "Organization")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param organization_id query string false "Only products of this organization"
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]interface{}
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Query("organization_id"))
	if err != nil {
		respondRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		respondRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [patch]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	product, err := h.catalogService.UpdateProduct(c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		respondRepoError(c, err, "Product")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServices godoc
// @Summary List services
// @Tags services
// @Produce json
// @Param organization_id query string false "Only services of this organization"
// @Success 200 {array} models.Service
// @Failure 500 {object} map[string]interface{}
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	svcs, err := h.catalogService.ListServices(c.Query("organization_id"))
	if err != nil {
		respondRepoError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// GetService godoc
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} map[string]interface{}
// @Router /api/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.catalogService.GetService(c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService godoc
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body models.CreateServiceRequest true "Service"
// @Success 201 {object} models.Service
// @Failure 400 {object} map[string]interface{}
// @Router /api/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	svc, err := h.catalogService.CreateService(&req)
	if err != nil {
		respondRepoError(c, err, "Service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.Service
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	svc, err := h.catalogService.UpdateService(c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary Delete service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Param("id")); err != nil {
		respondRepoError(c, err, "Service")
		return
	}
	c.Status(http.StatusNoContent)
}
