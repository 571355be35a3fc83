package user

import (
	"net/http"
	"strings"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/model"
	"social-network-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler 处理用户搜索请求
type SearchHandler struct {
	userService service.UserServiceInterface
}

// NewSearchHandler 创建一个新的 SearchHandler 实例
func NewSearchHandler(userService service.UserServiceInterface) *SearchHandler {
	return &SearchHandler{userService}
}

// Search 按用户名子串搜索用户，不区分大小写。
// GET 用 query 参数，POST 用表单字段，两者共用同一个视图。
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		query = strings.TrimSpace(c.PostForm("search_query"))
	}

	var users []*model.User
	if query != "" {
		var err error
		users, err = h.userService.SearchUsers(query)
		if err != nil {
			errors.HandleError(c, err)
			return
		}
	}

	render(c, http.StatusOK, "search_users.html", gin.H{
		"Query": query,
		"Users": users,
	})
}
