package social

import (
	"net/http"

	"social-network-backend/config"
	"social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StreamHandler 处理流相关的HTTP请求
type StreamHandler struct {
	streamService       service.StreamServiceInterface
	userService         service.UserServiceInterface
	relationshipService service.RelationshipServiceInterface
}

// NewStreamHandler 创建一个新的 StreamHandler 实例
func NewStreamHandler(
	streamService service.StreamServiceInterface,
	userService service.UserServiceInterface,
	relationshipService service.RelationshipServiceInterface,
) *StreamHandler {
	return &StreamHandler{
		streamService:       streamService,
		userService:         userService,
		relationshipService: relationshipService,
	}
}

// Home 渲染公开流：全站最新帖子
func (h *StreamHandler) Home(c *gin.Context) {
	posts, err := h.streamService.PublicStream(config.AppConfig.StreamLimit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	render(c, http.StatusOK, "stream.html", gin.H{"Posts": posts})
}

// Stream 渲染当前用户的个人流，未登录时重定向到首页
func (h *StreamHandler) Stream(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if !identity.IsAuthenticated() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	posts, err := h.streamService.StreamFor(identity.UserID(), config.AppConfig.StreamLimit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	render(c, http.StatusOK, "stream.html", gin.H{"Posts": posts})
}

// UserStream 渲染某个用户的个人流的公开视图。
// 路由中的用户名查找是精确匹配（不区分大小写），找不到时渲染 404。
func (h *StreamHandler) UserStream(c *gin.Context) {
	username := c.Param("username")
	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			NotFound(c)
			return
		}
		errors.HandleError(c, err)
		return
	}

	posts, err := h.streamService.StreamFor(user.ID, config.AppConfig.StreamLimit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	data := gin.H{
		"Posts":       posts,
		"ProfileUser": user,
	}

	identity := middleware.CurrentIdentity(c)
	if identity.IsAuthenticated() && identity.UserID() != user.ID {
		following, err := h.relationshipService.IsFollowing(identity.UserID(), user.ID)
		if err != nil {
			errors.HandleError(c, err)
			return
		}
		data["IsFollowing"] = following
	}

	render(c, http.StatusOK, "user_stream.html", data)
}

// Following 渲染当前用户和其关注对象的合并流
func (h *StreamHandler) Following(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	posts, err := h.streamService.StreamFor(identity.UserID(), config.AppConfig.StreamLimit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	render(c, http.StatusOK, "stream.html", gin.H{"Posts": posts})
}
