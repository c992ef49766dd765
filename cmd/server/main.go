package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"health-insurance-backend/internal/config"
	"health-insurance-backend/internal/database"
	"health-insurance-backend/internal/handler"
	"health-insurance-backend/internal/middleware"
	"health-insurance-backend/internal/models"
	"health-insurance-backend/internal/repository"
	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewRefreshTokenRepo(db)
	clientRepo := repository.NewClientRepo(db)
	policyRepo := repository.NewPolicyRepo(db)
	claimRepo := repository.NewClaimRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo)
	accountService := service.NewAccountService(userRepo)
	clientService := service.NewClientService(clientRepo)
	policyService := service.NewPolicyService(policyRepo, clientRepo)
	claimService := service.NewClaimService(claimRepo, clientRepo, policyRepo, hospitalRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, userRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	clientHandler := handler.NewClientHandler(clientService, policyService)
	policyHandler := handler.NewPolicyHandler(policyService)
	claimHandler := handler.NewClaimHandler(claimService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "health-insurance-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// API routes (authenticated, role-gated per operation)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		accounts := api.Group("/accounts")
		accounts.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			accounts.GET("", accountHandler.ListAccounts)
			accounts.POST("", accountHandler.CreateAccount)
			accounts.GET("/:id", accountHandler.GetAccount)
			accounts.PUT("/:id", accountHandler.UpdateAccount)
			accounts.POST("/:id/suspend", accountHandler.SuspendAccount)
			accounts.POST("/:id/activate", accountHandler.ActivateAccount)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleAgent), clientHandler.ListClients)
			clients.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleAgent), clientHandler.CreateClient)
			clients.POST("/verify-fingerprint", clientHandler.VerifyFingerprint)
			clients.GET("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleAgent), clientHandler.GetClient)
			clients.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleAgent), clientHandler.UpdateClient)
			clients.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), clientHandler.DeleteClient)
			clients.POST("/:id/fingerprint", middleware.RequireRoles(models.RoleAdmin, models.RoleAgent), clientHandler.AttachFingerprint)
		}

		policies := api.Group("/policies")
		policies.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleFinanceOfficer))
		{
			policies.GET("", policyHandler.ListPolicies)
			policies.POST("", policyHandler.CreatePolicy)
			policies.GET("/:id", policyHandler.GetPolicy)
			policies.PUT("/:id", policyHandler.UpdatePolicy)
			policies.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), policyHandler.DeletePolicy)
		}

		claims := api.Group("/claims")
		{
			claims.GET("", claimHandler.ListClaims)
			claims.GET("/stats", claimHandler.ClaimStats)
			claims.GET("/:id", claimHandler.GetClaim)
			claims.POST("", middleware.RequireRoles(models.RoleHospital), claimHandler.SubmitClaim)
			claims.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleClaimOfficer), claimHandler.UpdateClaim)
			claims.POST("/:id/approve", middleware.RequireRoles(models.RoleAdmin, models.RoleClaimOfficer), claimHandler.ApproveClaim)
			claims.POST("/:id/reject", middleware.RequireRoles(models.RoleAdmin, models.RoleClaimOfficer), claimHandler.RejectClaim)
			claims.POST("/:id/reimburse", middleware.RequireRoles(models.RoleAdmin), claimHandler.ReimburseClaim)
		}

		hospitals := api.Group("/hospitals")
		{
			hospitals.GET("", hospitalHandler.ListHospitals)
			hospitals.GET("/profile", middleware.RequireRoles(models.RoleHospital), hospitalHandler.GetProfile)
			hospitals.GET("/:id", hospitalHandler.GetHospital)
			hospitals.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleFinanceOfficer), hospitalHandler.CreateHospital)
			hospitals.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleFinanceOfficer), hospitalHandler.UpdateHospital)
			hospitals.POST("/:id/verify", middleware.RequireRoles(models.RoleAdmin), hospitalHandler.VerifyHospital)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
