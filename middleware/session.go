package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName 会话 Cookie 名
	SessionCookieName = "house_session"
	// SessionTTL 会话有效期
	SessionTTL = 7 * 24 * time.Hour
)

// 会话令牌只存在进程内存中，重启后全部失效，需要重新登录
var (
	sessionMu sync.RWMutex
	sessions  = make(map[string]time.Time)
)

// NewSession 颁发一个新的会话令牌
func NewSession() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	sessionMu.Lock()
	sessions[token] = time.Now().Add(SessionTTL)
	sessionMu.Unlock()

	return token, nil
}

// DropSession 注销会话
func DropSession(token string) {
	sessionMu.Lock()
	delete(sessions, token)
	sessionMu.Unlock()
}

// validSession 会话是否存在且未过期
func validSession(token string) bool {
	if token == "" {
		return false
	}
	sessionMu.RLock()
	expires, ok := sessions[token]
	sessionMu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expires) {
		DropSession(token)
		return false
	}
	return true
}

// SessionAuth 登录态校验中间件
// 除登录页外的所有路由都经过这里；未登录的浏览器请求重定向到登录页，
// 显式要 JSON 的请求返回 401
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || !validSession(token) {
			if strings.Contains(c.GetHeader("Accept"), "application/json") {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "请先登录",
				})
			} else {
				c.Redirect(http.StatusTemporaryRedirect, "/login")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
