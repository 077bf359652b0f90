package services

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// CatalogService manages organizations and the products and services they sell
type CatalogService struct {
	orgRepo     *repository.OrganizationRepository
	productRepo *repository.ProductRepository
	serviceRepo *repository.ServiceRepository
}

func NewCatalogService(
	orgRepo *repository.OrganizationRepository,
	productRepo *repository.ProductRepository,
	serviceRepo *repository.ServiceRepository,
) *CatalogService {
	return &CatalogService{
		orgRepo:     orgRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
	}
}

// Organizations

func (s *CatalogService) ListOrganizations() ([]*models.Organization, error) {
	return s.orgRepo.GetAll()
}

func (s *CatalogService) GetOrganization(id string) (*models.Organization, error) {
	return s.orgRepo.GetByID(id)
}

func (s *CatalogService) CreateOrganization(req *models.CreateOrganizationRequest) (*models.Organization, error) {
	org := &models.Organization{
		ID:          strings.TrimSpace(req.ID),
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

func (s *CatalogService) UpdateOrganization(id string, updates map[string]interface{}) (*models.Organization, error) {
	if err := s.orgRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.orgRepo.GetByID(id)
}

func (s *CatalogService) DeleteOrganization(id string) error {
	return s.orgRepo.Delete(id)
}

// Products

func (s *CatalogService) ListProducts(organizationID string) ([]*models.Product, error) {
	return s.productRepo.GetAll(organizationID)
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *CatalogService) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:             strings.TrimSpace(req.ID),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		TargetAudience: req.TargetAudience,
		Features:       pq.StringArray(req.Features),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error) {
	if err := s.productRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// Services

func (s *CatalogService) ListServices(organizationID string) ([]*models.Service, error) {
	return s.serviceRepo.GetAll(organizationID)
}

func (s *CatalogService) GetService(id string) (*models.Service, error) {
	return s.serviceRepo.GetByID(id)
}

func (s *CatalogService) CreateService(req *models.CreateServiceRequest) (*models.Service, error) {
	service := &models.Service{
		ID:             strings.TrimSpace(req.ID),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Duration:       req.Duration,
		TargetAudience: req.TargetAudience,
		Features:       pq.StringArray(req.Features),
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

func (s *CatalogService) UpdateService(id string, updates map[string]interface{}) (*models.Service, error) {
	if err := s.serviceRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.serviceRepo.GetByID(id)
}

func (s *CatalogService) DeleteService(id string) error {
	return s.serviceRepo.Delete(id)
}
