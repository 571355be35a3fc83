package service

import (
	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/repository/interfaces"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// RelationshipService 处理关注关系的业务逻辑
type RelationshipService struct {
	relationshipRepo interfaces.RelationshipRepository
}

// NewRelationshipService 创建一个新的 RelationshipService 实例
func NewRelationshipService(relationshipRepo interfaces.RelationshipRepository) *RelationshipService {
	return &RelationshipService{relationshipRepo: relationshipRepo}
}

// Follow 创建一条关注边。重复关注是幂等的：
// 唯一键冲突被吸收为成功，不会产生第二条边。自关注被拒绝。
func (s *RelationshipService) Follow(followerID, followedID int) error {
	if followerID == followedID {
		return errors.New(errors.ErrSelfFollow, "cannot follow yourself")
	}

	relationship := &model.Relationship{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	err := s.relationshipRepo.Create(relationship)
	if err != nil {
		if errors.Is(err, errors.ErrResourceExists) {
			util.Logger.Debug("重复关注，忽略",
				zap.Int("follower_id", followerID),
				zap.Int("followed_id", followedID))
			return nil
		}
		return err
	}
	return nil
}

// Unfollow 删除一条关注边，边不存在时为无操作
func (s *RelationshipService) Unfollow(followerID, followedID int) error {
	return s.relationshipRepo.Delete(followerID, followedID)
}

// Following 返回 userID 关注的所有用户
func (s *RelationshipService) Following(userID int) ([]*model.User, error) {
	return s.relationshipRepo.Following(userID)
}

// Followers 返回关注 userID 的所有用户
func (s *RelationshipService) Followers(userID int) ([]*model.User, error) {
	return s.relationshipRepo.Followers(userID)
}

// IsFollowing 判断 followerID 是否关注了 followedID
func (s *RelationshipService) IsFollowing(followerID, followedID int) (bool, error) {
	return s.relationshipRepo.IsFollowing(followerID, followedID)
}

// RelationshipServiceInterface 供处理器依赖
type RelationshipServiceInterface interface {
	Follow(followerID, followedID int) error
	Unfollow(followerID, followedID int) error
	Following(userID int) ([]*model.User, error)
	Followers(userID int) ([]*model.User, error)
	IsFollowing(followerID, followedID int) (bool, error)
}

// 确保 RelationshipService 实现了 RelationshipServiceInterface
var _ RelationshipServiceInterface = (*RelationshipService)(nil)
