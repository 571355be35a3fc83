package mysql

import (
	"database/sql"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/util"

	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// Create 创建一个新用户，用户名和邮箱的唯一性由数据库唯一键保证。
// 并发注册时服务层的预检查可能同时通过，唯一键冲突在这里兜底。
func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (username, email, password_hash, joined_at)
              VALUES (?, ?, ?, NOW())`
	result, err := r.db.Exec(query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if IsDuplicateEntry(err) {
			return errors.Wrap(errors.ErrUserExists, "username or email already exists", err)
		}
		util.Logger.Error("创建用户失败", zap.Error(err), zap.String("username", user.Username))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新用户ID失败", zap.Error(err))
		return err
	}
	user.ID = int(id)
	util.Logger.Info("用户创建成功", zap.Int("user_id", user.ID))
	return nil
}

// FindByID 通过ID查找用户
func (r *userRepository) FindByID(id int) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, joined_at
              FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

// FindByEmail 通过邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, joined_at
              FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

// FindByUsername 通过用户名精确查找用户，不区分大小写
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, joined_at
              FROM users WHERE LOWER(username) = LOWER(?)`
	return r.scanUser(r.db.QueryRow(query, username))
}

// Search 按用户名子串查找用户，不区分大小写
func (r *userRepository) Search(query string) ([]*model.User, error) {
	stmt := `SELECT id, username, email, password_hash, joined_at
             FROM users
             WHERE LOWER(username) LIKE CONCAT('%', LOWER(?), '%')
             ORDER BY username ASC`
	rows, err := r.db.Query(stmt, query)
	if err != nil {
		util.Logger.Error("搜索用户失败", zap.Error(err), zap.String("query", query))
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

// scanUser 扫描单行用户数据，未找到时返回 (nil, nil)
func (r *userRepository) scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
