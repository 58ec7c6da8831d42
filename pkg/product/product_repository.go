package product

import (
	"context"

	"gorm.io/gorm"

	"myfridge-backend/entities"
)

type (
	ProductRepository interface {
		Query(ctx context.Context, plan QueryPlan) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id string, userID string) (*entities.Product, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
		CreateProducts(ctx context.Context, products []*entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		SoftDeleteProduct(ctx context.Context, id string) error
		GetProductsExpiringOn(ctx context.Context, date string) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Query(ctx context.Context, plan QueryPlan) ([]*entities.Product, error) {
	query := r.db.WithContext(ctx).Model(&entities.Product{})

	// Column names come from the compiler's fixed allow-list, so string
	// concatenation here cannot inject anything.
	for _, p := range plan.Predicates {
		switch p.Op {
		case OpEq:
			query = query.Where(p.Column+" = ?", p.Value)
		case OpLte:
			query = query.Where(p.Column+" <= ?", p.Value)
		case OpGte:
			query = query.Where(p.Column+" >= ?", p.Value)
		case OpGt:
			query = query.Where(p.Column+" > ?", p.Value)
		case OpILike:
			query = query.Where(p.Column+" ILIKE ?", p.Value)
		}
	}

	direction := "asc"
	if plan.SortDesc {
		direction = "desc"
	}

	var products []*entities.Product
	if err := query.
		Preload("StoragePlace").
		Order(plan.SortBy + " " + direction).
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string, userID string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("StoragePlace").
		Where("id = ? AND user_id = ?", id, userID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) CreateProducts(ctx context.Context, products []*entities.Product) error {
	return r.db.WithContext(ctx).Create(products).Error
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func (r *productRepository) SoftDeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true}).Error
}

func (r *productRepository) GetProductsExpiringOn(ctx context.Context, date string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("expiration_date = ? AND is_deleted = ?", date, false).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
