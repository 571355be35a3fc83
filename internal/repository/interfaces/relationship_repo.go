package interfaces

import "social-network-backend/internal/model"

// RelationshipRepository 定义了关注关系的数据库操作接口。
// (follower_id, followed_id) 由数据库唯一键保证至多一条边。
type RelationshipRepository interface {
	Create(relationship *model.Relationship) error
	Delete(followerID, followedID int) error
	Following(userID int) ([]*model.User, error)
	Followers(userID int) ([]*model.User, error)
	IsFollowing(followerID, followedID int) (bool, error)
}
