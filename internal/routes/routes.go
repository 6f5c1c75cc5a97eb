package routes

import (
	"github.com/gin-gonic/gin"

	"testschool/internal/authz"
	"testschool/internal/handlers"
	"testschool/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	verifyHandler *handlers.VerifyHandler,
	testHandler *handlers.TestHandler,
	certificateHandler *handlers.CertificateHandler,
	questionHandler *handlers.QuestionHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/register", authHandler.Register)
	r.POST("/register/confirm", verifyHandler.ConfirmEmail)
	r.POST("/register/resend", verifyHandler.ResendCode)

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// TESTS
	tests := r.Group("/tests")
	{
		tests.GET("/:step/questions", testHandler.GetQuestions)
		tests.POST("/:step/submit", testHandler.Submit)
	}

	r.GET("/results", testHandler.ListResults)
	r.GET("/certification", testHandler.GetCertification)
	r.GET("/certificate/download", certificateHandler.Download)

	// QUESTIONS (Admin)
	questions := r.Group("/questions", middleware.RequireRoles(authz.RoleAdmin))
	{
		questions.POST("/", questionHandler.Create)
		questions.GET("/", questionHandler.List)
	}

	return r
}
