package service

import (
	"testing"

	"social-network-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

// TestStreamFor 测试个人流委托给组合查询
func TestStreamFor(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewStreamService(mockRepo)

	alice := &model.User{ID: 1, Username: "alice"}
	mockRepo.On("StreamFor", 2, 100).Return([]*model.Post{
		{ID: 1, UserID: 1, Content: "hello world", User: alice},
	}, nil)

	posts, err := service.StreamFor(2, 100)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "hello world", posts[0].Content)
	assert.Equal(t, "alice", posts[0].User.Username)
	mockRepo.AssertExpectations(t)
}

// TestPublicStream 测试公开流委托给全站最新查询
func TestPublicStream(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewStreamService(mockRepo)

	mockRepo.On("Recent", 100).Return([]*model.Post{
		{ID: 2, Content: "second"},
		{ID: 1, Content: "first"},
	}, nil)

	posts, err := service.PublicStream(100)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	mockRepo.AssertExpectations(t)
}
