package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type stubUserStore struct {
	byUsername  map[string]*model.User
	superadmins int64
	created     []*model.User
}

func (s *stubUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = bson.NewObjectID()
	s.created = append(s.created, u)
	return nil
}

func (s *stubUserStore) GetByID(context.Context, bson.ObjectID) (*model.User, error) {
	return nil, nil
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return s.byUsername[username], nil
}

func (s *stubUserStore) ListByCompany(context.Context, bson.ObjectID) ([]*model.User, error) {
	return nil, nil
}

func (s *stubUserStore) Update(context.Context, bson.ObjectID, bson.M) (*model.User, error) {
	return nil, nil
}

func (s *stubUserStore) CountSuperadmins(context.Context) (int64, error) {
	return s.superadmins, nil
}

type stubCompanyStore struct {
	company *model.Company
	incs    []int
}

func (s *stubCompanyStore) GetByID(context.Context, bson.ObjectID) (*model.Company, error) {
	return s.company, nil
}

func (s *stubCompanyStore) IncCount(_ context.Context, _ bson.ObjectID, role string, delta int) error {
	s.incs = append(s.incs, delta)
	switch role {
	case model.RoleAdmin:
		s.company.AdminCount += delta
	case model.RoleAgent:
		s.company.AgentCount += delta
	}
	return nil
}

type stubBalanceEnsurer struct{ ensured int }

func (s *stubBalanceEnsurer) EnsureBalance(context.Context, bson.ObjectID, bson.ObjectID, map[string]float64) error {
	s.ensured++
	return nil
}

func TestCheckUserLimit(t *testing.T) {
	assert.NoError(t, CheckUserLimit(&model.Company{UserLimit: 5, AdminCount: 1, AgentCount: 3}))
	assert.ErrorIs(t, CheckUserLimit(&model.Company{UserLimit: 5, AdminCount: 1, AgentCount: 4}), ErrLimitReached)
	assert.ErrorIs(t, CheckUserLimit(&model.Company{UserLimit: 5, AdminCount: 2, AgentCount: 5}), ErrLimitReached)
}

func TestUserCreateLimit(t *testing.T) {
	companyID := bson.NewObjectID()
	req := func(username string) dto.CreateUserReq {
		return dto.CreateUserReq{
			Username: username,
			Password: "secret-pass",
			Role:     model.RoleAgent,
			Name:     "Agent",
		}
	}

	t.Run("admits up to the limit", func(t *testing.T) {
		users := &stubUserStore{}
		companies := &stubCompanyStore{company: &model.Company{UserLimit: 2, AgentCount: 1}}
		balances := &stubBalanceEnsurer{}
		svc := NewUserService(users, companies, balances, nil)

		u, err := svc.Create(context.Background(), req("agent2"), companyID)
		require.NoError(t, err)
		assert.Equal(t, companyID, u.CompanyID)
		assert.Equal(t, 1, balances.ensured)
		assert.Equal(t, []int{1}, companies.incs)
	})

	t.Run("rejects past the limit", func(t *testing.T) {
		users := &stubUserStore{}
		companies := &stubCompanyStore{company: &model.Company{UserLimit: 2, AgentCount: 2}}
		svc := NewUserService(users, companies, &stubBalanceEnsurer{}, nil)

		_, err := svc.Create(context.Background(), req("agent3"), companyID)
		assert.ErrorIs(t, err, ErrLimitReached)
		assert.Empty(t, users.created)
	})
}

func TestUserCreateSuperadminSingleton(t *testing.T) {
	users := &stubUserStore{superadmins: 1}
	svc := NewUserService(users, &stubCompanyStore{}, &stubBalanceEnsurer{}, nil)

	_, err := svc.Create(context.Background(), dto.CreateUserReq{
		Username: "root2",
		Password: "secret-pass",
		Role:     model.RoleSuperadmin,
		Name:     "Root",
	}, bson.ObjectID{})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(&stubUserStore{}, &stubCompanyStore{}, &stubBalanceEnsurer{}, nil)

	_, err := svc.Create(context.Background(), dto.CreateUserReq{
		Username: "x",
		Password: "secret-pass",
		Role:     "manager",
		Name:     "X",
	}, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrValidation)

	t.Run("username taken", func(t *testing.T) {
		users := &stubUserStore{byUsername: map[string]*model.User{"taken": {}}}
		companies := &stubCompanyStore{company: &model.Company{UserLimit: 10}}
		svc := NewUserService(users, companies, &stubBalanceEnsurer{}, nil)
		_, err := svc.Create(context.Background(), dto.CreateUserReq{
			Username: "taken",
			Password: "secret-pass",
			Role:     model.RoleAgent,
			Name:     "X",
		}, bson.NewObjectID())
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}
