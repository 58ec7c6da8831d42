package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
	"myfridge-backend/pkg/storageplace"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, filter domain.ProductFilter, userID string) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.CreateProductRequest, userID string) (domain.ProductResponse, error)
		CreateProductsBatch(ctx context.Context, req domain.BatchCreateProductsRequest, userID string) ([]domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) (domain.ProductResponse, error)
		UpdateFavorite(ctx context.Context, id string, isFavorite bool, userID string) error
		SmartDeleteProduct(ctx context.Context, id string, userID string) (domain.SmartDeleteResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		storageRepository storageplace.StorageRepository
	}
)

func NewProductService(productRepository ProductRepository, storageRepository storageplace.StorageRepository) ProductService {
	return &productService{
		productRepository: productRepository,
		storageRepository: storageRepository,
	}
}

func (s *productService) GetProducts(ctx context.Context, filter domain.ProductFilter, userID string) ([]domain.ProductResponse, error) {
	today := TodayUTC()
	plan := CompileFilter(filter, userID, today)

	products, err := s.productRepository.Query(ctx, plan)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p, today))
	}
	return response, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error) {
	p, err := s.productRepository.GetProductByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(p, TodayUTC()), nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest, userID string) (domain.ProductResponse, error) {
	entity, err := s.buildProduct(ctx, req, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	if err := s.productRepository.CreateProduct(ctx, entity); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(entity, TodayUTC()), nil
}

func (s *productService) CreateProductsBatch(ctx context.Context, req domain.BatchCreateProductsRequest, userID string) ([]domain.ProductResponse, error) {
	// Validate everything up front so the batch is all-or-nothing and goes
	// to the store as a single write.
	products := make([]*entities.Product, 0, len(req.Items))
	for _, item := range req.Items {
		entity, err := s.buildProduct(ctx, item, userID)
		if err != nil {
			return nil, err
		}
		products = append(products, entity)
	}

	if err := s.productRepository.CreateProducts(ctx, products); err != nil {
		return nil, err
	}

	today := TodayUTC()
	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p, today))
	}
	return response, nil
}

func (s *productService) buildProduct(ctx context.Context, req domain.CreateProductRequest, userID string) (*entities.Product, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if req.Quantity.IsNegative() {
		return nil, domain.ErrNegativeQuantity
	}

	quantity := req.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}

	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	var storagePlaceID *uuid.UUID
	if req.StoragePlaceID != "" {
		id, err := s.checkStorageOwnership(ctx, req.StoragePlaceID, userID)
		if err != nil {
			return nil, err
		}
		storagePlaceID = id
	}

	return &entities.Product{
		ID:             uuid.New(),
		UserID:         userUUID,
		StoragePlaceID: storagePlaceID,
		Name:           req.Name,
		Quantity:       quantity,
		Unit:           unit,
		ExpirationDate: expirationDate,
	}, nil
}

// checkStorageOwnership ensures the storage place exists and belongs to the
// requesting user before any product write happens.
func (s *productService) checkStorageOwnership(ctx context.Context, storageID string, userID string) (*uuid.UUID, error) {
	place, err := s.storageRepository.GetStoragePlaceByID(ctx, storageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoragePlaceNotFound
		}
		return nil, err
	}

	if place.UserID.String() != userID {
		return nil, domain.ErrStoragePlaceNotOwned
	}

	id := place.ID
	return &id, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) (domain.ProductResponse, error) {
	p, err := s.productRepository.GetProductByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.Quantity != nil {
		if req.Quantity.IsNegative() {
			return domain.ProductResponse{}, domain.ErrNegativeQuantity
		}
		p.Quantity = *req.Quantity
	}

	if req.Unit != nil {
		p.Unit = *req.Unit
	}

	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			p.ExpirationDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.ExpirationDate)
			if err != nil {
				return domain.ProductResponse{}, domain.ErrInvalidExpirationDate
			}
			p.ExpirationDate = &parsed
		}
	}

	if req.StoragePlaceID != nil {
		storageID, err := s.checkStorageOwnership(ctx, *req.StoragePlaceID, userID)
		if err != nil {
			return domain.ProductResponse{}, err
		}
		p.StoragePlaceID = storageID
	}

	if req.IsFavorite != nil {
		p.IsFavorite = *req.IsFavorite
	}

	if err := s.productRepository.UpdateProduct(ctx, p); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(p, TodayUTC()), nil
}

func (s *productService) UpdateFavorite(ctx context.Context, id string, isFavorite bool, userID string) error {
	p, err := s.productRepository.GetProductByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	p.IsFavorite = isFavorite
	return s.productRepository.UpdateProduct(ctx, p)
}

func (s *productService) SmartDeleteProduct(ctx context.Context, id string, userID string) (domain.SmartDeleteResponse, error) {
	p, err := s.productRepository.GetProductByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SmartDeleteResponse{}, domain.ErrProductNotFound
		}
		return domain.SmartDeleteResponse{}, err
	}

	if p.IsFavorite {
		if err := s.productRepository.SoftDeleteProduct(ctx, id); err != nil {
			return domain.SmartDeleteResponse{}, err
		}
		return domain.SmartDeleteResponse{Mode: domain.DeleteModeSoft}, nil
	}

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return domain.SmartDeleteResponse{}, err
	}
	return domain.SmartDeleteResponse{Mode: domain.DeleteModeHard}, nil
}

func toProductResponse(p *entities.Product, today time.Time) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:                 p.ID.String(),
		Name:               p.Name,
		Quantity:           p.Quantity,
		Unit:               p.Unit,
		ExpirationCategory: Categorize(p.ExpirationDate, today),
		IsFavorite:         p.IsFavorite,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}

	if p.ExpirationDate != nil {
		response.ExpirationDate = p.ExpirationDate.Format("2006-01-02")
	}

	if p.StoragePlace != nil {
		response.StoragePlace = &domain.StoragePlaceResponse{
			ID:   p.StoragePlace.ID.String(),
			Name: p.StoragePlace.Name,
		}
	}

	return response
}
