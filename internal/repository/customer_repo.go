package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CustomerRepo interface {
	GetCustomerByID(ctx context.Context, id uint64) (*model.Customer, error)
	GetCustomerByUserID(ctx context.Context, userID uint64) (*model.Customer, error)
	GetCustomerByDomain(ctx context.Context, domain string) (*model.Customer, error)
	ListCustomers(ctx context.Context, seoDevID *uint64) ([]*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	AssignSeoDev(ctx context.Context, customerID uint64, seoDevID *uint64) error
}

type CustomerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepo {
	return &CustomerRepoImpl{db: db}
}

func (s *CustomerRepoImpl) GetCustomerByID(ctx context.Context, id uint64) (*model.Customer, error) {
	customer := &model.Customer{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(customer, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return customer, nil
}

func (s *CustomerRepoImpl) GetCustomerByUserID(ctx context.Context, userID uint64) (*model.Customer, error) {
	customer := &model.Customer{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(customer)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return customer, nil
}

func (s *CustomerRepoImpl) GetCustomerByDomain(ctx context.Context, domain string) (*model.Customer, error) {
	customer := &model.Customer{}
	result := s.db.WithContext(ctx).
		Where("domain = ?", domain).
		First(customer)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return customer, nil
}

func (s *CustomerRepoImpl) ListCustomers(ctx context.Context, seoDevID *uint64) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	query := s.db.WithContext(ctx).Preload("User")
	if seoDevID != nil {
		query = query.Where("seo_dev_id = ?", *seoDevID)
	}
	result := query.Order("created_at DESC").Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}
	return customers, nil
}

func (s *CustomerRepoImpl) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	result := s.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":   customer.Name,
			"domain": customer.Domain,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *CustomerRepoImpl) AssignSeoDev(ctx context.Context, customerID uint64, seoDevID *uint64) error {
	result := s.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", customerID).
		Update("seo_dev_id", seoDevID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
