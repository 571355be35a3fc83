package mysql

import (
	"database/sql"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// relationshipRepository 实现了 RelationshipRepository 接口
type relationshipRepository struct {
	db *sql.DB
}

// NewRelationshipRepository 创建一个新的 relationshipRepository 实例
func NewRelationshipRepository(db *sql.DB) *relationshipRepository {
	return &relationshipRepository{db: db}
}

// Create 创建一条关注边，重复插入触发唯一键冲突并映射为 ErrResourceExists
func (r *relationshipRepository) Create(relationship *model.Relationship) error {
	query := `INSERT INTO follows (follower_id, followed_id, created_at)
              VALUES (?, ?, NOW())`
	result, err := r.db.Exec(query, relationship.FollowerID, relationship.FollowedID)
	if err != nil {
		if IsDuplicateEntry(err) {
			return errors.Wrap(errors.ErrResourceExists, "relationship already exists", err)
		}
		util.Logger.Error("创建关注失败", zap.Error(err))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新关注ID失败", zap.Error(err))
		return err
	}
	relationship.ID = int(id)

	util.Logger.Info("关注创建成功",
		zap.Int("follower_id", relationship.FollowerID),
		zap.Int("followed_id", relationship.FollowedID))
	return nil
}

// Delete 删除一条关注边，边不存在时不报错
func (r *relationshipRepository) Delete(followerID, followedID int) error {
	query := `DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`
	_, err := r.db.Exec(query, followerID, followedID)
	if err != nil {
		util.Logger.Error("删除关注失败", zap.Error(err))
		return err
	}
	return nil
}

// Following 返回 userID 关注的所有用户
func (r *relationshipRepository) Following(userID int) ([]*model.User, error) {
	query := `
        SELECT u.id, u.username, u.email, u.password_hash, u.joined_at
        FROM users u
        JOIN follows f ON u.id = f.followed_id
        WHERE f.follower_id = ?
        ORDER BY f.created_at DESC`
	return r.queryUsers(query, userID)
}

// Followers 返回关注 userID 的所有用户
func (r *relationshipRepository) Followers(userID int) ([]*model.User, error) {
	query := `
        SELECT u.id, u.username, u.email, u.password_hash, u.joined_at
        FROM users u
        JOIN follows f ON u.id = f.follower_id
        WHERE f.followed_id = ?
        ORDER BY f.created_at DESC`
	return r.queryUsers(query, userID)
}

// IsFollowing 判断 followerID 是否关注了 followedID
func (r *relationshipRepository) IsFollowing(followerID, followedID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
        SELECT EXISTS(
            SELECT 1 FROM follows
            WHERE follower_id = ? AND followed_id = ?
        )
    `, followerID, followedID).Scan(&exists)
	return exists, err
}

func (r *relationshipRepository) queryUsers(query string, userID int) ([]*model.User, error) {
	rows, err := r.db.Query(query, userID)
	if err != nil {
		util.Logger.Error("查询关注关系失败", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.JoinedAt)
		if err != nil {
			util.Logger.Error("扫描用户数据失败", zap.Error(err))
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
