package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-network-backend/config"
	"social-network-backend/internal/api/social"
	"social-network-backend/internal/api/user"
	"social-network-backend/internal/common"
	apperrors "social-network-backend/internal/errors"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/repository/mysql"
	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 设置数据库连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接，启动瞬间的临时错误重试几次
	if err := common.WithRetry(db.Ping, 3); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", util.ValidateUsername)
	}

	// 初始化存储库、服务和处理器
	userRepo := mysql.NewUserRepository(db)
	relationshipRepo := mysql.NewRelationshipRepository(db)
	postRepo := mysql.NewPostRepository(db)

	userService := service.NewUserService(userRepo)
	relationshipService := service.NewRelationshipService(relationshipRepo)
	postService := service.NewPostService(postRepo)
	streamService := service.NewStreamService(postRepo)

	authHandler := user.NewAuthHandler(userService)
	searchHandler := user.NewSearchHandler(userService)
	streamHandler := social.NewStreamHandler(streamService, userService, relationshipService)
	postHandler := social.NewPostHandler(postService)
	followHandler := social.NewFollowHandler(relationshipService, userService)

	// 调试模式下创建测试用户，已存在时忽略
	if config.AppConfig.Debug {
		seedTestUser(userService)
	}

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 每个请求都解析一次身份
	r.Use(middleware.IdentityMiddleware(userService))

	// 加载页面模板
	r.LoadHTMLGlob("web/templates/*.html")

	// 公开路由
	r.GET("/", streamHandler.Home)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/stream", streamHandler.Stream)
	r.GET("/stream/:username", streamHandler.UserStream)
	r.GET("/post/:id", postHandler.ViewPost)

	// 需要认证的路由
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth())
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/new_post", postHandler.NewPostPage)
		authorized.POST("/new_post", postHandler.CreatePost)
		authorized.GET("/following", streamHandler.Following)
		authorized.GET("/follow/:username", followHandler.Follow)
		authorized.GET("/unfollow/:username", followHandler.Unfollow)
		authorized.GET("/search_users", searchHandler.Search)
		authorized.POST("/search_users", searchHandler.Search)
	}

	// 404 处理
	r.NoRoute(social.NotFound)

	// 创建 http.Server 以支持优雅关闭
	srv := &http.Server{
		Addr:    config.AppConfig.Host + ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// seedTestUser 创建调试用的测试账户，重复创建时忽略冲突
func seedTestUser(userService *service.UserService) {
	_, err := userService.Register("testuser", "example@example.com", "password")
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserExists) {
			return
		}
		util.Logger.Warn("创建测试用户失败", zap.Error(err))
		return
	}
	util.Logger.Info("测试用户已创建", zap.String("username", "testuser"))
}
