package interfaces

import "social-network-backend/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	// FindByUsername 按用户名精确查找，不区分大小写
	FindByUsername(username string) (*model.User, error)
	// Search 按用户名子串查找，不区分大小写
	Search(query string) ([]*model.User, error)
}
