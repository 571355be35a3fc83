package service

import (
	"testing"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRelationshipRepository 是 RelationshipRepository 接口的模拟实现
type MockRelationshipRepository struct {
	mock.Mock
}

func (m *MockRelationshipRepository) Create(relationship *model.Relationship) error {
	args := m.Called(relationship)
	return args.Error(0)
}

func (m *MockRelationshipRepository) Delete(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) Following(userID int) ([]*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRelationshipRepository) Followers(userID int) ([]*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRelationshipRepository) IsFollowing(followerID, followedID int) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

// TestFollow 测试创建关注边
func TestFollow(t *testing.T) {
	mockRepo := new(MockRelationshipRepository)
	service := NewRelationshipService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.Relationship")).Return(nil)

	err := service.Follow(1, 2)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestFollowDuplicate 测试重复关注被吸收为无操作
func TestFollowDuplicate(t *testing.T) {
	mockRepo := new(MockRelationshipRepository)
	service := NewRelationshipService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.Relationship")).
		Return(errors.New(errors.ErrResourceExists, "relationship already exists"))

	// 唯一键冲突对调用者是成功
	err := service.Follow(1, 2)
	assert.NoError(t, err)
}

// TestFollowSelf 测试自关注被拒绝
func TestFollowSelf(t *testing.T) {
	mockRepo := new(MockRelationshipRepository)
	service := NewRelationshipService(mockRepo)

	err := service.Follow(1, 1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSelfFollow))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// TestUnfollow 测试取消关注，边不存在时也不报错
func TestUnfollow(t *testing.T) {
	mockRepo := new(MockRelationshipRepository)
	service := NewRelationshipService(mockRepo)

	mockRepo.On("Delete", 1, 2).Return(nil)

	err := service.Unfollow(1, 2)
	assert.NoError(t, err)

	// 对不存在的边重复取关同样是无操作
	err = service.Unfollow(1, 2)
	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "Delete", 2)
}

// TestFollowingAndFollowers 测试关注与粉丝列表
func TestFollowingAndFollowers(t *testing.T) {
	mockRepo := new(MockRelationshipRepository)
	service := NewRelationshipService(mockRepo)

	alice := &model.User{ID: 1, Username: "alice"}
	bob := &model.User{ID: 2, Username: "bob"}

	mockRepo.On("Following", 2).Return([]*model.User{alice}, nil)
	mockRepo.On("Followers", 1).Return([]*model.User{bob}, nil)

	following, err := service.Following(2)
	assert.NoError(t, err)
	assert.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)

	followers, err := service.Followers(1)
	assert.NoError(t, err)
	assert.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].Username)
}
