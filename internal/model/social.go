package model

import "time"

// Post 结构体表示帖子模型，帖子创建后不可变
type Post struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user,omitempty"`
}

// Relationship 结构体表示有向的关注关系（follower 关注 followed）
type Relationship struct {
	ID         int       `json:"id"`
	FollowerID int       `json:"follower_id"`
	FollowedID int       `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
