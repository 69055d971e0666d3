package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler verifies the dashboard password server-side and issues
// session tokens. The original site checked the password in the browser;
// that was never a real boundary, so verification lives here now.
type AdminHandler struct {
	passwordHash string
	sessions     *SessionStore
}

func NewAdminHandler(passwordHash string, sessions *SessionStore) *AdminHandler {
	return &AdminHandler{passwordHash: passwordHash, sessions: sessions}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   h.sessions.Create(),
	})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

	if found {
		h.sessions.Revoke(strings.TrimSpace(token))
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
