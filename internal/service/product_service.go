package service

import (
	"github.com/google/uuid"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type ProductService interface {
	Create(userID string, req *model.Product) error
	Update(userID string, id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(userID string, id uuid.UUID) error
	Get(userID string, id uuid.UUID) (*model.Product, error)
	List(userID, search string) ([]model.Product, error)
	StockAlerts(userID string) ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(pRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: pRepo}
}

func (s *productService) Create(userID string, req *model.Product) error {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return apperr.Validation(fields)
	}

	existing, _ := s.productRepo.FindBySKU(userID, req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return apperr.Conflict("SKU already exists")
	}

	req.UserID = userID
	if req.Unit == "" {
		req.Unit = model.UnitPiece
	}
	if err := s.productRepo.Create(req); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *productService) Update(userID string, id uuid.UUID, req *model.Product) (*model.Product, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	existing, err := s.productRepo.FindByID(userID, id)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}

	if req.SKU != existing.SKU {
		dup, _ := s.productRepo.FindBySKU(userID, req.SKU)
		if dup != nil && dup.ID != uuid.Nil && dup.ID != id {
			return nil, apperr.Conflict("SKU already exists")
		}
	}

	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Cost = req.Cost
	existing.Quantity = req.Quantity
	existing.MinQuantity = req.MinQuantity
	if req.Unit != "" {
		existing.Unit = req.Unit
	}
	existing.CategoryID = req.CategoryID
	existing.SupplierID = req.SupplierID
	existing.Category = nil
	existing.Supplier = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *productService) Delete(userID string, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(userID, id); err != nil {
		return notFoundOr(err, "product")
	}

	used, err := s.productRepo.HasTransactionItems(userID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if used {
		return apperr.Conflict("product has transaction history")
	}

	if err := s.productRepo.Delete(userID, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *productService) Get(userID string, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(userID, id)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}
	return product, nil
}

func (s *productService) List(userID, search string) ([]model.Product, error) {
	return s.productRepo.FindAll(userID, search)
}

func (s *productService) StockAlerts(userID string) ([]model.Product, error) {
	return s.productRepo.LowStock(userID)
}
