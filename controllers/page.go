// controllers/page.go
package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// CustomerPage serves the management page. The API base URL is injected
// from the environment so the page can target a separately hosted API;
// empty means same origin.
func CustomerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "customer.html", gin.H{
		"APIBase": os.Getenv("API_BASE_URL"),
	})
}
