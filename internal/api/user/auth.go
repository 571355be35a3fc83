package user

import (
	"net/http"

	"social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService}
}

type registerForm struct {
	Username  string `form:"username" binding:"required,username"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=6"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterPage 渲染注册表单
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{
		"Errors":   map[string]string{},
		"Username": "",
		"Email":    "",
	})
}

// Register 处理用户注册请求。校验失败时带字段错误重新渲染表单，
// 注册成功后重定向到个人流。
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		util.Logger.Warn("注册失败，表单校验未通过", zap.Error(err))
		render(c, http.StatusOK, "register.html", gin.H{
			"Errors":   formErrors(err),
			"Username": c.PostForm("username"),
			"Email":    c.PostForm("email"),
		})
		return
	}

	_, err := h.userService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, errors.ErrUserExists) {
			util.Logger.Warn("注册失败，用户已存在", zap.String("username", form.Username))
			render(c, http.StatusOK, "register.html", gin.H{
				"Error":    err.(*errors.AppError).Message,
				"Errors":   map[string]string{},
				"Username": form.Username,
				"Email":    form.Email,
			})
			return
		}
		errors.HandleError(c, err)
		return
	}

	util.SetFlash(c, "Registered. You can now log in.")
	c.Redirect(http.StatusFound, "/stream")
}

// LoginPage 渲染登录表单
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Email": ""})
}

// Login 处理用户登录请求。认证失败时统一显示同一条错误消息，
// 成功时签发会话令牌并重定向到首页。
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Error": "Invalid email or password.",
			"Email": c.PostForm("email"),
		})
		return
	}

	user, err := h.userService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredentials) {
			render(c, http.StatusOK, "login.html", gin.H{
				"Error": "Invalid email or password.",
				"Email": form.Email,
			})
			return
		}
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "failed to generate token", err))
		return
	}

	c.SetCookie(util.SessionCookie, token, 24*60*60, "/", "", false, true)
	util.SetFlash(c, "Logged in.")
	c.Redirect(http.StatusFound, "/")
}

// Logout 处理用户登出，清除会话并重定向到首页
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(util.SessionCookie, "", -1, "/", "", false, true)
	util.SetFlash(c, "Logged out. See you soon.")
	c.Redirect(http.StatusFound, "/")
}

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
