package social

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"social-network-backend/config"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/model"
	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockUserService 是 UserServiceInterface 的模拟实现
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(username, email, password string) (*model.User, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(email, password string) (*model.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) SearchUsers(query string) ([]*model.User, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

var _ service.UserServiceInterface = (*MockUserService)(nil)

// MockStreamService 是 StreamServiceInterface 的模拟实现
type MockStreamService struct {
	mock.Mock
}

func (m *MockStreamService) StreamFor(userID, limit int) ([]*model.Post, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockStreamService) PublicStream(limit int) ([]*model.Post, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

var _ service.StreamServiceInterface = (*MockStreamService)(nil)

// MockRelationshipService 是 RelationshipServiceInterface 的模拟实现
type MockRelationshipService struct {
	mock.Mock
}

func (m *MockRelationshipService) Follow(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockRelationshipService) Unfollow(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockRelationshipService) Following(userID int) ([]*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRelationshipService) Followers(userID int) ([]*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRelationshipService) IsFollowing(followerID, followedID int) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

var _ service.RelationshipServiceInterface = (*MockRelationshipService)(nil)

// MockPostService 是 PostServiceInterface 的模拟实现
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(userID int, content string) (*model.Post, error) {
	args := m.Called(userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) GetPostByID(id int) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) PostsByUser(userID, limit int) ([]*model.Post, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

var _ service.PostServiceInterface = (*MockPostService)(nil)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.StreamLimit = 100
	os.Exit(m.Run())
}

// newRouter 搭建带身份中间件和模板的测试路由
func newRouter(userService service.UserServiceInterface) *gin.Engine {
	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")
	router.Use(middleware.IdentityMiddleware(userService))
	return router
}

// authenticate 为请求附上 userID 的会话 Cookie
func authenticate(req *http.Request, userID int) {
	token, _ := util.GenerateToken(userID)
	req.AddCookie(&http.Cookie{Name: util.SessionCookie, Value: token})
}

func doGet(router *gin.Engine, path string, userID int) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if userID > 0 {
		authenticate(req, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doPostForm(router *gin.Engine, path string, form url.Values, userID int) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if userID > 0 {
		authenticate(req, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
