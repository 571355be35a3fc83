package model

import "time"

// User 结构体表示用户模型
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // 密码哈希不应在JSON中暴露
	JoinedAt     time.Time `json:"joined_at"`
}
