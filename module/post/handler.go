package post

import (
	"net/http"
	"strconv"

	midsec "SocialChat/middleware/security"
	postsvc "SocialChat/module/post/service"
	usersvc "SocialChat/module/user/service"
	mgo "SocialChat/service/mgo"
	"SocialChat/tools/errs"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type createReq struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type commentReq struct {
	Text string `json:"text" binding:"required"`
}

func HandlerCreate(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}
	p, err := postsvc.Create(c.Request.Context(), mgo.GetDB(), midsec.UserID(c), req.Content, req.ImageURL)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func HandlerFeed(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	posts, err := postsvc.Feed(c.Request.Context(), mgo.GetDB(), limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func HandlerLike(c *gin.Context) {
	if err := postsvc.Like(c.Request.Context(), mgo.GetDB(), c.Param("id"), midsec.UserID(c)); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func HandlerUnlike(c *gin.Context) {
	if err := postsvc.Unlike(c.Request.Context(), mgo.GetDB(), c.Param("id"), midsec.UserID(c)); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func HandlerComment(c *gin.Context) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}
	u, err := usersvc.GetByID(c.Request.Context(), mgo.GetDB(), midsec.UserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	cm, err := postsvc.AddComment(c.Request.Context(), mgo.GetDB(), c.Param("id"), u.UserID, u.Username, req.Text)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": cm})
}

func writeErr(c *gin.Context, err error) {
	var ce *errs.CodeError
	if errors.As(err, &ce) {
		c.JSON(http.StatusOK, ce)
		return
	}
	c.JSON(http.StatusInternalServerError, errs.ErrInternal)
}
