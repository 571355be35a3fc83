package interfaces

import "social-network-backend/internal/model"

// PostRepository 定义了帖子的数据库操作接口，结果均按创建时间倒序返回
type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id int) (*model.Post, error)
	FindByUser(userID, limit int) ([]*model.Post, error)
	Recent(limit int) ([]*model.Post, error)
	// StreamFor 返回 userID 本人及其关注者发布的帖子
	StreamFor(userID, limit int) ([]*model.Post, error)
}
