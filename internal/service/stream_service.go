package service

import (
	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/repository/interfaces"
)

// StreamService 组合关注关系和帖子，派生用户的个人流
type StreamService struct {
	postRepo interfaces.PostRepository
}

// NewStreamService 创建一个新的 StreamService 实例
func NewStreamService(postRepo interfaces.PostRepository) *StreamService {
	return &StreamService{postRepo: postRepo}
}

// StreamFor 返回 userID 的个人流：本人及其关注对象发布的帖子，
// 按时间倒序，最多 limit 条
func (s *StreamService) StreamFor(userID, limit int) ([]*model.Post, error) {
	posts, err := s.postRepo.StreamFor(userID, limit)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to compose stream", err)
	}
	return posts, nil
}

// PublicStream 返回全站公开流，按时间倒序，最多 limit 条
func (s *StreamService) PublicStream(limit int) ([]*model.Post, error) {
	posts, err := s.postRepo.Recent(limit)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to load public stream", err)
	}
	return posts, nil
}

// StreamServiceInterface 供处理器依赖
type StreamServiceInterface interface {
	StreamFor(userID, limit int) ([]*model.Post, error)
	PublicStream(limit int) ([]*model.Post, error)
}

// 确保 StreamService 实现了 StreamServiceInterface
var _ StreamServiceInterface = (*StreamService)(nil)
