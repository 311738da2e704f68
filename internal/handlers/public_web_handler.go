package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/catalog"
)

type PublicWebHandler struct{}

func NewPublicWebHandler() *PublicWebHandler {
	return &PublicWebHandler{}
}

// ShowHomePage renderiza a página institucional: hero, sobre, serviços,
// galeria e o formulário "Agende Seu Horário".
func (h *PublicWebHandler) ShowHomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Services":  catalog.Services(),
		"Gallery":   catalog.Gallery(),
		"TimeSlots": catalog.TimeSlots(),
	})
}
