package main

import (
	"time"

	"growing-backend/config"
	"growing-backend/database"
	"growing-backend/internal/api/advisor"
	routes "growing-backend/internal/app/http"
	"growing-backend/internal/infra/mercadopago"
	"growing-backend/internal/pkg/cache"
	"growing-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if err := mercadopago.Init(config.MP_ACCESS_TOKEN); err != nil {
		// Checkout and webhook enrichment return errors until configured;
		// the rest of the API still works.
		utils.LogError(err, "Mercado Pago client not initialized")
	}

	store, err := cache.NewRedis(config.CACHE_HOST, config.CACHE_PORT)
	if err != nil {
		utils.LogError(err, "Redis ping failed, advisor caching degraded until it recovers")
	}
	advisor.Store = store
	advisor.AI = advisor.NewClient(config.AI_API_URL, config.AI_API_KEY)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
