package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"SocialChat/global"
	"SocialChat/logger"
	mid "SocialChat/middleware"
	"SocialChat/module/post"
	"SocialChat/module/user"
	"SocialChat/service/chat"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := global.Config()
	global.ConfigAll()

	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg.Release {
		r.Use(mid.SecurityHeaders())
	}
	r.Use(mid.Origin())

	// chat namespace
	chatSrv := chat.NewServer(cfg.GatewayNodeId)
	r.GET("/chat", chatSrv.HandleWS)

	// auth
	mid.POST(r, "/api/auth/register", user.HandlerRegister, mid.RouteOpt{})
	mid.POST(r, "/api/auth/login", user.HandlerLogin, mid.RouteOpt{})
	mid.POST(r, "/api/auth/logout", user.HandlerLogout, mid.RouteOpt{IsAuth: true})

	// users
	mid.GET(r, "/api/users/:id", user.HandlerProfile, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/users/:id/friend-request", user.HandlerFriendRequest, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/users/:id/friend-accept", user.HandlerFriendAccept, mid.RouteOpt{IsAuth: true})

	// posts
	mid.GET(r, "/api/posts", post.HandlerFeed, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/posts", post.HandlerCreate, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/posts/:id/like", post.HandlerLike, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/posts/:id/unlike", post.HandlerUnlike, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/posts/:id/comments", post.HandlerComment, mid.RouteOpt{IsAuth: true})

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("app is running on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("listen: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	chatSrv.Close()
}
