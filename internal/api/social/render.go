package social

import (
	"net/http"

	"social-network-backend/internal/middleware"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// render 渲染模板，附带当前用户和一次性提示消息
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = util.TakeFlash(c)
	}
	c.HTML(status, name, data)
}

// NotFound 渲染 404 页面，也注册为路由器的 NoRoute 处理器
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
