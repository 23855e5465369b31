package routes

import (
	adminapi "growing-backend/internal/api/admin"
	"growing-backend/internal/api/advisor"
	authapi "growing-backend/internal/api/auth"
	"growing-backend/internal/api/billing"
	"growing-backend/internal/api/cron"
	"growing-backend/internal/api/entitlements"
	financeapi "growing-backend/internal/api/finance"
	"growing-backend/internal/api/mpwebhook"
	postsapi "growing-backend/internal/api/posts"
	"growing-backend/internal/api/users"
	"growing-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhook and cron endpoints authenticate themselves (HMAC signature,
	// shared secret) and must not go through the JWT or sanitize layers.
	r.POST("/webhooks/mercadopago", mpwebhook.Handle)
	r.POST("/cron/expire-subscriptions", cron.ExpireSubscriptions)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/entitlement", entitlements.GetMyEntitlement)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/subscriptions/checkout", billing.CreateCheckout)

	auth.POST("/expenses", financeapi.CreateExpense)
	auth.GET("/expenses", financeapi.ListExpenses)
	auth.POST("/goals", financeapi.CreateGoal)
	auth.GET("/goals", financeapi.ListGoals)
	auth.PUT("/goals/:id/progress", financeapi.UpdateGoalProgress)

	auth.POST("/posts", middleware.SanitizeInputMiddleware(), postsapi.CreatePost)
	auth.GET("/feed", postsapi.ListFeed)
	auth.DELETE("/posts/:id", postsapi.DeletePost)

	// Trial or premium
	entitled := auth.Group("/")
	entitled.Use(middleware.RequireEntitlement())
	entitled.GET("/advisor/tips", advisor.GetFinancialTips)

	// Premium only
	premium := auth.Group("/")
	premium.Use(middleware.RequirePremium())
	premium.POST("/advisor/stock-analysis", advisor.AnalyzeStock)
	premium.POST("/advisor/investment-analysis", advisor.AnalyzeInvestment)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payment-events", adminapi.ListPaymentEvents)
	admin.GET("/user/:id", adminapi.GetUserDetails)
}
