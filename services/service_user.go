package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByCompany(ctx context.Context, companyID bson.ObjectID) ([]*model.User, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error)
	CountSuperadmins(ctx context.Context) (int64, error)
}

type UserCompanyStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Company, error)
	IncCount(ctx context.Context, id bson.ObjectID, role string, delta int) error
}

type LeaveBalanceEnsurer interface {
	EnsureBalance(ctx context.Context, companyID, userID bson.ObjectID, defaults map[string]float64) error
}

type UserService struct {
	users     UserStore
	companies UserCompanyStore
	leaves    LeaveBalanceEnsurer
	locker    Locker
}

// NewUserService takes a nil locker when redis is not configured; creation
// then falls back to the unguarded limit check.
func NewUserService(users UserStore, companies UserCompanyStore, leaves LeaveBalanceEnsurer, locker Locker) *UserService {
	return &UserService{users: users, companies: companies, leaves: leaves, locker: locker}
}

// CheckUserLimit is the admission rule: counts at or over the limit reject.
func CheckUserLimit(c *model.Company) error {
	if c.AdminCount+c.AgentCount >= c.UserLimit {
		return ErrLimitReached
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserReq, companyID bson.ObjectID) (*model.User, error) {
	if !model.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be one of superadmin, admin, user", ErrValidation)
	}

	if req.Role == model.RoleSuperadmin {
		// Only one superadmin exists; it is created by seed, never here.
		n, err := s.users.CountSuperadmins(ctx)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("%w: superadmin already exists", ErrDuplicate)
		}
	}

	if existing, err := s.users.GetByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username taken", ErrDuplicate)
	}

	if req.Role != model.RoleSuperadmin {
		if companyID.IsZero() {
			return nil, fmt.Errorf("%w: companyId required", ErrValidation)
		}
		// Serialize the count check per company; see DESIGN.md on the
		// over-admission race.
		if s.locker != nil {
			release, err := s.locker.Lock(ctx, "user-create:"+companyID.Hex(), 10*time.Second)
			if err != nil {
				return nil, err
			}
			defer release()
		}
		company, err := s.companies.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, fmt.Errorf("%w: company", ErrNotFound)
		}
		if err := CheckUserLimit(company); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	}
	if req.Role != model.RoleSuperadmin {
		u.CompanyID = companyID
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if req.Role != model.RoleSuperadmin {
		if err := s.companies.IncCount(ctx, companyID, req.Role, 1); err != nil {
			return nil, err
		}
	}
	if req.Role == model.RoleAgent {
		if err := s.leaves.EnsureBalance(ctx, companyID, u.ID, configs.DefaultLeaveBalances); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *UserService) ListByCompany(ctx context.Context, companyID bson.ObjectID) ([]*model.User, error) {
	return s.users.ListByCompany(ctx, companyID)
}

func (s *UserService) Update(ctx context.Context, id bson.ObjectID, req dto.UpdateUserReq) (*model.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

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
	if req.Disabled != nil {
		set["disabled"] = *req.Disabled
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	u, err := s.users.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	// Disabling frees a slot; re-enabling takes one back.
	if req.Disabled != nil && *req.Disabled != existing.Disabled && existing.Role != model.RoleSuperadmin {
		delta := -1
		if !*req.Disabled {
			delta = 1
		}
		if err := s.companies.IncCount(ctx, existing.CompanyID, existing.Role, delta); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id bson.ObjectID, req dto.UpdateProfileReq) (*model.User, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		set["avatar_url"] = *req.AvatarURL
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	u, err := s.users.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
