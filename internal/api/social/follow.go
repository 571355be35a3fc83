package social

import (
	"fmt"
	"net/http"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/model"
	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// FollowHandler 处理关注/取关的HTTP请求
type FollowHandler struct {
	relationshipService service.RelationshipServiceInterface
	userService         service.UserServiceInterface
}

// NewFollowHandler 创建一个新的 FollowHandler 实例
func NewFollowHandler(
	relationshipService service.RelationshipServiceInterface,
	userService service.UserServiceInterface,
) *FollowHandler {
	return &FollowHandler{
		relationshipService: relationshipService,
		userService:         userService,
	}
}

// Follow 关注目标用户后重定向回对方的流页面。
// 重复关注是无操作，自关注被拒绝并提示。
func (h *FollowHandler) Follow(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	err := h.relationshipService.Follow(middleware.CurrentIdentity(c).UserID(), target.ID)
	if err != nil {
		if errors.Is(err, errors.ErrSelfFollow) {
			util.SetFlash(c, "You cannot follow yourself.")
			c.Redirect(http.StatusFound, "/stream/"+target.Username)
			return
		}
		errors.HandleError(c, err)
		return
	}

	util.SetFlash(c, fmt.Sprintf("You are now following %s.", target.Username))
	c.Redirect(http.StatusFound, "/stream/"+target.Username)
}

// Unfollow 取消关注目标用户后重定向回对方的流页面，边不存在时为无操作
func (h *FollowHandler) Unfollow(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	err := h.relationshipService.Unfollow(middleware.CurrentIdentity(c).UserID(), target.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	util.SetFlash(c, fmt.Sprintf("You have unfollowed %s.", target.Username))
	c.Redirect(http.StatusFound, "/stream/"+target.Username)
}

// resolveTarget 按用户名精确解析目标用户，找不到时渲染 404
func (h *FollowHandler) resolveTarget(c *gin.Context) (*model.User, bool) {
	username := c.Param("username")
	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			NotFound(c)
			return nil, false
		}
		errors.HandleError(c, err)
		return nil, false
	}
	return user, true
}
