package social

import (
	"net/http"
	"testing"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFollowRouter(mockUsers *MockUserService, mockRelationships *MockRelationshipService) *gin.Engine {
	handler := NewFollowHandler(mockRelationships, mockUsers)
	router := newRouter(mockUsers)
	router.GET("/follow/:username", middleware.RequireAuth(), handler.Follow)
	router.GET("/unfollow/:username", middleware.RequireAuth(), handler.Unfollow)
	return router
}

// TestFollowHandler 测试关注后重定向回对方的流
func TestFollowHandler(t *testing.T) {
	mockUsers := new(MockUserService)
	mockRelationships := new(MockRelationshipService)
	router := newFollowRouter(mockUsers, mockRelationships)

	mockUsers.On("GetUserByID", 2).Return(&model.User{ID: 2, Username: "bob"}, nil)
	mockUsers.On("GetUserByUsername", "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
	mockRelationships.On("Follow", 2, 1).Return(nil)

	w := doGet(router, "/follow/alice", 2)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/stream/alice", w.Header().Get("Location"))
	mockRelationships.AssertExpectations(t)
}

// TestFollowHandlerAnonymous 测试未登录关注被重定向到登录页
func TestFollowHandlerAnonymous(t *testing.T) {
	mockUsers := new(MockUserService)
	mockRelationships := new(MockRelationshipService)
	router := newFollowRouter(mockUsers, mockRelationships)

	w := doGet(router, "/follow/alice", 0)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	mockRelationships.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything)
}

// TestFollowHandlerUnknownUser 测试关注未知用户渲染 404
func TestFollowHandlerUnknownUser(t *testing.T) {
	mockUsers := new(MockUserService)
	mockRelationships := new(MockRelationshipService)
	router := newFollowRouter(mockUsers, mockRelationships)

	mockUsers.On("GetUserByID", 2).Return(&model.User{ID: 2, Username: "bob"}, nil)
	mockUsers.On("GetUserByUsername", "ghost").
		Return(nil, errors.New(errors.ErrUserNotFound, "user not found"))

	w := doGet(router, "/follow/ghost", 2)
	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRelationships.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything)
}

// TestFollowHandlerSelf 测试自关注被拒绝并重定向
func TestFollowHandlerSelf(t *testing.T) {
	mockUsers := new(MockUserService)
	mockRelationships := new(MockRelationshipService)
	router := newFollowRouter(mockUsers, mockRelationships)

	mockUsers.On("GetUserByID", 2).Return(&model.User{ID: 2, Username: "bob"}, nil)
	mockUsers.On("GetUserByUsername", "bob").Return(&model.User{ID: 2, Username: "bob"}, nil)
	mockRelationships.On("Follow", 2, 2).
		Return(errors.New(errors.ErrSelfFollow, "cannot follow yourself"))

	w := doGet(router, "/follow/bob", 2)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/stream/bob", w.Header().Get("Location"))
}

// TestUnfollowHandler 测试取关后重定向回对方的流
func TestUnfollowHandler(t *testing.T) {
	mockUsers := new(MockUserService)
	mockRelationships := new(MockRelationshipService)
	router := newFollowRouter(mockUsers, mockRelationships)

	mockUsers.On("GetUserByID", 2).Return(&model.User{ID: 2, Username: "bob"}, nil)
	mockUsers.On("GetUserByUsername", "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
	mockRelationships.On("Unfollow", 2, 1).Return(nil)

	w := doGet(router, "/unfollow/alice", 2)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/stream/alice", w.Header().Get("Location"))
	mockRelationships.AssertExpectations(t)
}
