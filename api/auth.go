package api

import (
	"crypto/subtle"
	"net/http"

	"housebook/config"
	"housebook/middleware"

	"github.com/gin-gonic/gin"
)

// AuthHandler 登录处理器
// 全家共用一个登录口令，与配置中的明文口令比对
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建登录处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginForm 登录表单
type LoginForm struct {
	Password string `form:"password" binding:"required"`
}

// LoginPage 登录页数据
// @Summary 登录页
// @Tags 登录
// @Produce json
// @Param error query string false "上次登录失败标记"
// @Success 200 {object} Response
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	Success(c, gin.H{"error": c.Query("error")})
}

// Login 处理登录
// 口令正确则颁发会话 Cookie 并重定向到仪表盘，否则重定向回登录页
// @Summary 登录
// @Tags 登录
// @Accept x-www-form-urlencoded
// @Param password formData string true "登录口令"
// @Success 303 "登录成功，重定向到仪表盘"
// @Failure 500 {object} Response "未配置登录口令"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginForm
	if err := c.ShouldBind(&req); err != nil {
		SeeOther(c, "/login?error=1")
		return
	}

	if h.cfg.Auth.Password == "" {
		InternalError(c, "未配置登录口令，请设置 HOUSE_AUTH_PASSWORD")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Auth.Password)) != 1 {
		SeeOther(c, "/login?error=1")
		return
	}

	token, err := middleware.NewSession()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建会话失败"))
		return
	}

	secure := h.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(middleware.SessionTTL.Seconds()), "/", "", secure, true)

	SeeOther(c, "/")
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 登录
// @Success 303 "重定向到登录页"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		middleware.DropSession(token)
	}

	secure := h.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", secure, true)

	SeeOther(c, "/login")
}
