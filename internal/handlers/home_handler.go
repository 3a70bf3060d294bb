package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index handles the main portfolio page
func (h *HomeHandler) Index(c *gin.Context) {
	data := gin.H{
		"Title": "Portfolio",
	}

	c.HTML(http.StatusOK, "index.html", data)
}
