package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the route tree.
func SetupRouter(
	pc *controllers.PropertyController,
	bc *controllers.BookingController,
	cc *controllers.CommentController,
	cat *controllers.CatalogController,
	ic *controllers.ImageController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", pc.SearchProperties)
			properties.POST("", pc.CreateProperty)
			properties.GET("/:id", pc.GetProperty)
			properties.PUT("/:id", pc.UpdateProperty)
			properties.DELETE("/:id", pc.DeleteProperty)
			properties.PUT("/:id/like", pc.ToggleLike)
			properties.GET("/:id/bookings", bc.PropertyBookings)
			properties.GET("/:id/comments", cc.PropertyComments)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.ListBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", cc.CreateComment)
			comments.DELETE("/:id", cc.DeleteComment)
		}

		images := api.Group("/images")
		{
			images.POST("", ic.CreateImage)
			images.POST("/:id/main", ic.SetMainImage)
			images.DELETE("/:id", ic.DeleteImage)
		}

		api.GET("/categories", cat.GetCategories)
		api.GET("/conveniences", cat.GetConveniences)
		api.GET("/types", cat.GetTypes)

		user := api.Group("/user")
		{
			user.GET("/properties", pc.OwnerProperties)
			user.GET("/favorite/properties", pc.FavoriteProperties)
			user.POST("/favorites", pc.AddFavorite)
			user.DELETE("/favorites", pc.RemoveFavorite)
		}

		users := api.Group("/users")
		{
			users.POST("", uc.CreateUser)
			users.GET("/:id", uc.GetUser)
		}
	}

	return r
}
