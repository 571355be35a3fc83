package service

import (
	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/repository/interfaces"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户。用户名和邮箱的唯一性先在这里预检查，
// 竞态下的最终裁决由数据库唯一键完成，仓库层将冲突映射为 ErrUserExists。
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to check username", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrUserExists, "user with that name already exists")
	}

	existing, err = s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to check email", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrUserExists, "user with that email already exists")
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "failed to hash password", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	util.Logger.Info("用户注册成功", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login 用户登录。无论是邮箱不存在还是密码错误，
// 都返回同一个 ErrInvalidCredentials，不泄露具体哪项出错。
func (s *UserService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find user", err)
	}
	if user == nil || !util.CheckPassword(password, user.PasswordHash) {
		return nil, errors.New(errors.ErrInvalidCredentials, "invalid email or password")
	}

	util.Logger.Info("用户登录成功", zap.Int("user_id", user.ID))
	return user, nil
}

// GetUserByID 通过ID获取用户信息
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}
	return user, nil
}

// GetUserByUsername 通过用户名精确查找用户，不区分大小写。
// 路由中的用户名查找用这个方法，子串搜索只属于 SearchUsers。
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}
	return user, nil
}

// SearchUsers 按用户名子串搜索用户，不区分大小写
func (s *UserService) SearchUsers(query string) ([]*model.User, error) {
	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to search users", err)
	}
	return users, nil
}

// UserServiceInterface 供处理器和中间件依赖
type UserServiceInterface interface {
	Register(username, email, password string) (*model.User, error)
	Login(email, password string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	SearchUsers(query string) ([]*model.User, error)
}

// 确保 UserService 实现了 UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)
