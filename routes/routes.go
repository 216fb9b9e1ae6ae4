package routes

import (
	"net/http"
	"os"
	"strings"

	"customer-records-backend/config"
	"customer-records-backend/controllers"
	"customer-records-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(s store.CustomerStore) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.LoadHTMLGlob("web/templates/*")
	r.GET("/", controllers.CustomerPage)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctl := &controllers.CustomerController{Store: s}

	customer := r.Group("/customer")
	{
		customer.GET("", ctl.GetCustomers)
		customer.POST("", ctl.CreateCustomer)
		customer.PUT("", ctl.UpdateCustomer)
		customer.GET("/:id", ctl.GetCustomer)
		customer.DELETE("/:id", ctl.DeleteCustomer)
	}

	return r
}

func corsOrigins() []string {
	env := os.Getenv("CORS_ORIGINS")
	if env == "" {
		return []string{"http://localhost:3000"}
	}

	origins := strings.Split(env, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
