package user

import (
	"net/http"

	"SocialChat/global"
	midsec "SocialChat/middleware/security"
	usersvc "SocialChat/module/user/service"
	mgo "SocialChat/service/mgo"
	"SocialChat/tools/errs"
	jwtlib "SocialChat/tools/security"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type registerReq struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	FaceURL   string `json:"face_url"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func HandlerRegister(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}
	u, err := usersvc.Register(c.Request.Context(), mgo.GetDB(), usersvc.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FaceURL:   req.FaceURL,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func HandlerLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}
	opts := jwtlib.DefaultOptions(global.GetJwtSecret())
	res, err := usersvc.Login(c.Request.Context(), mgo.GetDB(), opts,
		req.Username, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func HandlerLogout(c *gin.Context) {
	if err := usersvc.Logout(c.Request.Context(), midsec.TokenHash(c)); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func HandlerProfile(c *gin.Context) {
	userID := c.Param("id")
	if userID == "me" {
		userID = midsec.UserID(c)
	}
	u, err := usersvc.GetByID(c.Request.Context(), mgo.GetDB(), userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func HandlerFriendRequest(c *gin.Context) {
	err := usersvc.SendFriendRequest(c.Request.Context(), mgo.GetDB(), midsec.UserID(c), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func HandlerFriendAccept(c *gin.Context) {
	err := usersvc.AcceptFriendRequest(c.Request.Context(), mgo.GetDB(), midsec.UserID(c), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func writeErr(c *gin.Context, err error) {
	var ce *errs.CodeError
	if errors.As(err, &ce) {
		c.JSON(http.StatusOK, ce)
		return
	}
	c.JSON(http.StatusInternalServerError, errs.ErrInternal)
}
