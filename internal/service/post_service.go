package service

import (
	"strings"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/repository/interfaces"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// PostService 处理帖子的业务逻辑
type PostService struct {
	postRepo interfaces.PostRepository
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(postRepo interfaces.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost 创建一个新帖子。内容先去除首尾空白，
// 去除后为空的内容被拒绝，帖子创建后不可变。
func (s *PostService) CreatePost(userID int, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New(errors.ErrEmptyContent, "post content cannot be empty")
	}

	post := &model.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to create post", err)
	}

	util.Logger.Info("帖子发布成功", zap.Int("post_id", post.ID), zap.Int("user_id", userID))
	return post, nil
}

// GetPostByID 通过ID获取帖子
func (s *PostService) GetPostByID(id int) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find post", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "post not found")
	}
	return post, nil
}

// PostsByUser 返回某个用户的帖子，最新的在前
func (s *PostService) PostsByUser(userID, limit int) ([]*model.Post, error) {
	return s.postRepo.FindByUser(userID, limit)
}

// PostServiceInterface 供处理器依赖
type PostServiceInterface interface {
	CreatePost(userID int, content string) (*model.Post, error)
	GetPostByID(id int) (*model.Post, error)
	PostsByUser(userID, limit int) ([]*model.Post, error)
}

// 确保 PostService 实现了 PostServiceInterface
var _ PostServiceInterface = (*PostService)(nil)
