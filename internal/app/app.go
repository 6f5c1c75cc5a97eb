package app

import (
	"database/sql"
	"fmt"
	"log"

	"testschool/internal/config"
	"testschool/internal/handlers"
	"testschool/internal/middleware"
	"testschool/internal/pdf"
	"testschool/internal/repositories"
	"testschool/internal/routes"
	"testschool/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "testschool/docs"
)

func Run() {
	cfg := config.LoadConfig()

	middleware.SetJWTKey(cfg.JWT.Secret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	otpService := services.NewOTPService(codeRepo)
	userService := services.NewUserService(userRepo, emailService, authService, otpService)
	questionService := services.NewQuestionService(questionRepo)

	// Уведомления в Telegram (nil, если не сконфигурированы)
	notifier := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	testService := services.NewTestService(questionRepo, resultRepo, notifier)

	// PDF генератор (укажи реальный путь к TTF)
	// например, положи DejaVuSans.ttf в assets/fonts/DejaVuSans.ttf
	certGen := pdf.NewCertificateGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf")
	certificateService := services.NewCertificateService(testService, userService, certGen)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	verifyHandler := handlers.NewVerifyHandler(otpService, userService)
	testHandler := handlers.NewTestHandler(testService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Роуты (JWT/RBAC — внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		authHandler,
		verifyHandler,
		testHandler,
		certificateHandler,
		questionHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
