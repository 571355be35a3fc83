package social

import (
	"net/http"
	"strconv"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/model"
	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PostHandler 处理帖子相关的HTTP请求
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService}
}

// NewPostPage 渲染发帖表单
func (h *PostHandler) NewPostPage(c *gin.Context) {
	render(c, http.StatusOK, "post.html", gin.H{})
}

// CreatePost 为当前用户创建帖子。内容去除首尾空白后为空时
// 带错误重新渲染表单，成功后重定向到首页。
func (h *PostHandler) CreatePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	content := c.PostForm("content")

	_, err := h.postService.CreatePost(identity.UserID(), content)
	if err != nil {
		if errors.Is(err, errors.ErrEmptyContent) {
			render(c, http.StatusOK, "post.html", gin.H{
				"Error": "Post content cannot be empty.",
			})
			return
		}
		errors.HandleError(c, err)
		return
	}

	util.SetFlash(c, "Posted.")
	c.Redirect(http.StatusFound, "/")
}

// ViewPost 渲染单个帖子，帖子不存在时渲染 404
func (h *PostHandler) ViewPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		NotFound(c)
		return
	}

	post, err := h.postService.GetPostByID(id)
	if err != nil {
		if errors.Is(err, errors.ErrPostNotFound) {
			NotFound(c)
			return
		}
		errors.HandleError(c, err)
		return
	}

	render(c, http.StatusOK, "stream.html", gin.H{
		"Posts": []*model.Post{post},
	})
}
