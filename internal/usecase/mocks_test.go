package usecase_test

import (
	"context"

	"go-skillstack-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) UpdateEmail(ctx context.Context, id int64, email string) error {
	return m.Called(ctx, id, email).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) CountRelations(ctx context.Context, id int64) (*domain.RelationCounts, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RelationCounts), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill, projectIDs []int64) error {
	return m.Called(ctx, skill, projectIDs).Error(0)
}
func (m *MockSkillRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Skill, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) FindByNameForUser(ctx context.Context, name string, userID int64) (*domain.Skill, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) ReplaceProjects(ctx context.Context, skillID int64, projectIDs []int64) error {
	return m.Called(ctx, skillID, projectIDs).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project, skillIDs []int64) error {
	return m.Called(ctx, project, skillIDs).Error(0)
}
func (m *MockProjectRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Project, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) FindByTitleForUser(ctx context.Context, title string, userID int64) (*domain.Project, error) {
	args := m.Called(ctx, title, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Project, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error {
	return m.Called(ctx, projectID, skillIDs).Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) Create(ctx context.Context, goal *domain.Goal, skillIDs []int64) error {
	return m.Called(ctx, goal, skillIDs).Error(0)
}
func (m *MockGoalRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}
func (m *MockGoalRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}
func (m *MockGoalRepo) FindByTitleForUser(ctx context.Context, title string, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, title, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}
func (m *MockGoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}
func (m *MockGoalRepo) ReplaceSkills(ctx context.Context, goalID int64, skillIDs []int64) error {
	return m.Called(ctx, goalID, skillIDs).Error(0)
}
func (m *MockGoalRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
