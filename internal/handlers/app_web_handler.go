package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "app.html", gin.H{
		"Page": "login",
	})
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "app.html", gin.H{
		"Page": "dashboard",
	})
}
