package middleware

import (
	"social-network-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// identityKey 是身份在请求上下文中的键
const identityKey = "identity"

// Identity 表示一次请求的访问者身份
type Identity interface {
	UserID() int
	IsAuthenticated() bool
}

// userIdentity 是已认证用户的身份
type userIdentity struct {
	user *model.User
}

func (i userIdentity) UserID() int           { return i.user.ID }
func (i userIdentity) IsAuthenticated() bool { return true }

// anonymousIdentity 是未认证访问者的身份
type anonymousIdentity struct{}

func (anonymousIdentity) UserID() int           { return 0 }
func (anonymousIdentity) IsAuthenticated() bool { return false }

// CurrentIdentity 返回请求的访问者身份，未认证时为匿名身份
func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity
		}
	}
	return anonymousIdentity{}
}

// CurrentUser 返回已认证的当前用户，未认证时返回 nil
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(userIdentity); ok {
			return identity.user
		}
	}
	return nil
}
