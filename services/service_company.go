package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type CompanyStore interface {
	Create(ctx context.Context, c *model.Company) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Company, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

type CompanyService struct {
	companies CompanyStore
}

func NewCompanyService(companies CompanyStore) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) Create(ctx context.Context, req dto.CreateCompanyReq) (*model.Company, error) {
	if req.UserLimit <= 0 {
		return nil, fmt.Errorf("%w: userLimit must be positive", ErrValidation)
	}
	c := &model.Company{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		UserLimit: req.UserLimit,
		WorkStart: req.WorkStart,
		Active:    true,
	}
	if c.WorkStart == "" {
		c.WorkStart = "09:00"
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) Get(ctx context.Context, id bson.ObjectID) (*model.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	return s.companies.List(ctx)
}

func (s *CompanyService) Update(ctx context.Context, id bson.ObjectID, req dto.UpdateCompanyReq) (*model.Company, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.UserLimit != nil {
		if *req.UserLimit <= 0 {
			return nil, fmt.Errorf("%w: userLimit must be positive", ErrValidation)
		}
		set["user_limit"] = *req.UserLimit
	}
	if req.WorkStart != nil {
		set["work_start"] = *req.WorkStart
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	c, err := s.companies.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *CompanyService) Delete(ctx context.Context, id bson.ObjectID) error {
	ok, err := s.companies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
