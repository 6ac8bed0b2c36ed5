package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, seoDevID *uint64) ([]*dto.CustomerDTO, error)
	GetCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	GetCustomerForUser(ctx context.Context, userID uint64) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, updateDTO *dto.UpdateCustomerDTO) error
	AssignSeoDev(ctx context.Context, id uint64, assignDTO *dto.AssignSeoDevDTO) error
}

type CustomerServiceImpl struct {
	customerRepo repository.CustomerRepo
	userRepo     repository.UserRepo
}

func NewCustomerService(customerRepo repository.CustomerRepo, userRepo repository.UserRepo) CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

func (s *CustomerServiceImpl) ListCustomers(ctx context.Context, seoDevID *uint64) ([]*dto.CustomerDTO, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, seoDevID)
	if err != nil {
		return nil, err
	}

	customerDTOs := make([]*dto.CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		customerDTO := &dto.CustomerDTO{}
		_ = copier.Copy(customerDTO, customer)
		customerDTOs = append(customerDTOs, customerDTO)
	}
	return customerDTOs, nil
}

func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	customerDTO := &dto.CustomerDTO{}
	_ = copier.Copy(customerDTO, customer)
	return customerDTO, nil
}

// GetCustomerForUser 按登录用户反查客户档案，CUSTOMER 访问自己资源时使用
func (s *CustomerServiceImpl) GetCustomerForUser(ctx context.Context, userID uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	customerDTO := &dto.CustomerDTO{}
	_ = copier.Copy(customerDTO, customer)
	return customerDTO, nil
}

func (s *CustomerServiceImpl) UpdateCustomer(ctx context.Context, id uint64, updateDTO *dto.UpdateCustomerDTO) error {
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	if customer.Domain != updateDTO.Domain {
		taken, err := s.customerRepo.GetCustomerByDomain(ctx, updateDTO.Domain)
		if err != nil {
			return err
		}
		if taken != nil && taken.ID != id {
			return ErrDomainExist
		}
	}

	customer.Name = updateDTO.Name
	customer.Domain = updateDTO.Domain
	if err = s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// AssignSeoDev 指派关系只用于列表过滤，被指派者必须是活跃的 SEO_DEV
func (s *CustomerServiceImpl) AssignSeoDev(ctx context.Context, id uint64, assignDTO *dto.AssignSeoDevDTO) error {
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	if assignDTO.SeoDevID != nil {
		seoDev, err := s.userRepo.GetActiveByID(ctx, *assignDTO.SeoDevID)
		if err != nil {
			return err
		}
		if seoDev == nil || seoDev.Role != model.RoleSeoDev {
			return ErrRoleInvalid
		}
	}

	return s.customerRepo.AssignSeoDev(ctx, id, assignDTO.SeoDevID)
}
