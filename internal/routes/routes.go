package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/handlers"
	"github.com/smokequit/smokequit-api/internal/middleware"
	"github.com/smokequit/smokequit-api/internal/models"
)

// CORSMiddleware allows the configured frontend origin to call the API.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// SetupRouter wires every endpoint with its role allow-list.
// Read access to the catalog is open to all four roles; mutations are
// restricted to administrator+moderator; deletes of chats/coaches and all
// account management are administrator only.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(h.Config.CORSOrigin))

	allRoles := []models.Role{models.RoleAdministrator, models.RoleModerator, models.RoleDeveloper, models.RoleMember}
	editors := []models.Role{models.RoleAdministrator, models.RoleModerator}

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth (Public) ---
		api.POST("/auth/login", h.Login)

		authed := api.Group("/")
		authed.Use(middleware.Auth(h.Config))
		{
			// --- Brands ---
			brands := authed.Group("/brands")
			{
				brands.GET("", middleware.RequireRoles(allRoles...), h.GetAllBrands)
				brands.GET("/search", middleware.RequireRoles(allRoles...), h.SearchBrands)
				brands.GET("/paging/:page/:size", middleware.RequireRoles(allRoles...), h.GetBrandsWithPaging)
				brands.GET("/:id", middleware.RequireRoles(editors...), h.GetBrandByID)
				brands.POST("", middleware.RequireRoles(editors...), h.CreateBrand)
				brands.PUT("/:id", middleware.RequireRoles(editors...), h.UpdateBrand)
				brands.DELETE("/:id", middleware.RequireRoles(editors...), h.DeleteBrand)
			}

			// --- Smartphones ---
			smartphones := authed.Group("/smartphones")
			{
				smartphones.GET("", middleware.RequireRoles(allRoles...), h.GetAllSmartphones)
				smartphones.GET("/search", middleware.RequireRoles(allRoles...), h.SearchSmartphones)
				smartphones.GET("/paging/:page/:size", middleware.RequireRoles(allRoles...), h.GetSmartphonesWithPaging)
				smartphones.GET("/:id", middleware.RequireRoles(editors...), h.GetSmartphoneByID)
				smartphones.POST("", middleware.RequireRoles(editors...), h.CreateSmartphone)
				smartphones.PUT("/:id", middleware.RequireRoles(editors...), h.UpdateSmartphone)
				smartphones.DELETE("/:id", middleware.RequireRoles(editors...), h.DeleteSmartphone)
			}

			// --- Coaches ---
			coaches := authed.Group("/coaches")
			{
				coaches.GET("", middleware.RequireRoles(allRoles...), h.GetAllCoaches)
				coaches.GET("/search", middleware.RequireRoles(allRoles...), h.SearchCoaches)
				coaches.GET("/paging/:page/:size", middleware.RequireRoles(allRoles...), h.GetCoachesWithPaging)
				coaches.GET("/:id", middleware.RequireRoles(allRoles...), h.GetCoachByID)
				coaches.POST("", middleware.RequireRoles(editors...), h.CreateCoach)
				coaches.PUT("/:id", middleware.RequireRoles(editors...), h.UpdateCoach)
				coaches.DELETE("/:id", middleware.RequireRoles(models.RoleAdministrator), h.DeleteCoach)
			}

			// --- Chats ---
			chats := authed.Group("/chats")
			chats.Use(middleware.RequireRoles(editors...))
			{
				chats.GET("", h.GetAllChats)
				chats.GET("/search", h.SearchChats)
				chats.GET("/paging/:page/:size", h.GetChatsWithPaging)
				chats.GET("/:id", h.GetChatByID)
				chats.POST("", h.CreateChat)
				chats.PUT("/:id", h.UpdateChat)
				chats.PATCH("/:id/read", h.MarkChatRead)
				chats.PATCH("/:id/unread", h.MarkChatUnread)
				chats.DELETE("/:id", middleware.RequireRoles(models.RoleAdministrator), h.DeleteChat)
			}

			// --- Accounts (Admin only) ---
			accounts := authed.Group("/accounts")
			accounts.Use(middleware.RequireRoles(models.RoleAdministrator))
			{
				accounts.GET("", h.GetAllAccounts)
				accounts.GET("/:id", h.GetAccountByID)
				accounts.POST("", h.CreateAccount)
				accounts.PUT("/:id", h.UpdateAccount)
				accounts.DELETE("/:id", h.DeleteAccount)
			}
		}
	}

	return router
}
