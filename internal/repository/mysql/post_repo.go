package mysql

import (
	"database/sql"

	"social-network-backend/internal/model"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// postRepository 实现了 PostRepository 接口
type postRepository struct {
	db *sql.DB
}

// NewPostRepository 创建一个新的 postRepository 实例
func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{db: db}
}

// Create 创建一个新帖子
func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (user_id, content, created_at)
              VALUES (?, ?, NOW())`
	result, err := r.db.Exec(query, post.UserID, post.Content)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err), zap.Int("user_id", post.UserID))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新帖子ID失败", zap.Error(err))
		return err
	}
	post.ID = int(id)

	util.Logger.Info("帖子创建成功", zap.Int("post_id", post.ID))
	return nil
}

// FindByID 通过ID查找帖子，未找到时返回 (nil, nil)
func (r *postRepository) FindByID(id int) (*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, p.content, p.created_at,
               u.id, u.username, u.email, u.joined_at
        FROM posts p
        JOIN users u ON p.user_id = u.id
        WHERE p.id = ?`

	var post model.Post
	var user model.User
	err := r.db.QueryRow(query, id).Scan(
		&post.ID, &post.UserID, &post.Content, &post.CreatedAt,
		&user.ID, &user.Username, &user.Email, &user.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	post.User = &user
	return &post, nil
}

// FindByUser 返回某个用户的帖子，最新的在前
func (r *postRepository) FindByUser(userID, limit int) ([]*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, p.content, p.created_at,
               u.id, u.username, u.email, u.joined_at
        FROM posts p
        JOIN users u ON p.user_id = u.id
        WHERE p.user_id = ?
        ORDER BY p.created_at DESC, p.id DESC
        LIMIT ?`
	return r.queryPosts(query, userID, limit)
}

// Recent 返回全站最新的帖子
func (r *postRepository) Recent(limit int) ([]*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, p.content, p.created_at,
               u.id, u.username, u.email, u.joined_at
        FROM posts p
        JOIN users u ON p.user_id = u.id
        ORDER BY p.created_at DESC, p.id DESC
        LIMIT ?`
	return r.queryPosts(query, limit)
}

// StreamFor 返回 userID 本人及其关注者发布的帖子。
// 作者集合为 {自己} ∪ 关注对象，同一帖子不会因自关注而重复出现。
func (r *postRepository) StreamFor(userID, limit int) ([]*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, p.content, p.created_at,
               u.id, u.username, u.email, u.joined_at
        FROM posts p
        JOIN users u ON p.user_id = u.id
        WHERE p.user_id = ?
           OR p.user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)
        ORDER BY p.created_at DESC, p.id DESC
        LIMIT ?`
	return r.queryPosts(query, userID, userID, limit)
}

func (r *postRepository) queryPosts(query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		util.Logger.Error("查询帖子失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		var user model.User
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Content, &post.CreatedAt,
			&user.ID, &user.Username, &user.Email, &user.JoinedAt,
		)
		if err != nil {
			util.Logger.Error("扫描帖子数据失败", zap.Error(err))
			return nil, err
		}
		post.User = &user
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
