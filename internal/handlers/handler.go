package handlers

import (
	"quizdeck/internal/logger"
	"quizdeck/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerQuizRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// registerQuizRoutes puts every quiz route behind the bearer-token check;
// mutations of existing quizzes additionally require the admin role.
func (h *Handler) registerQuizRoutes(r *gin.Engine) {
	quizzes := r.Group("/api/quizzes", h.authMiddleware)
	{
		quizzes.GET("", h.listQuizzes)
		quizzes.GET("/:id", h.getQuiz)
		quizzes.POST("", h.createQuiz)
		quizzes.PUT("/:id", h.adminOnly, h.updateQuiz)
		quizzes.DELETE("/:id", h.adminOnly, h.deleteQuiz)
	}
}
