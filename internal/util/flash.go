package util

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookie 是存放一次性提示消息的 Cookie 名称
const flashCookie = "flash"

// SetFlash 设置一次性提示消息，在下一次页面渲染时显示并清除
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// TakeFlash 读取并清除提示消息，没有消息时返回空字符串
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
