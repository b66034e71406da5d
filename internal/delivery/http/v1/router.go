package v1

import (
	"net/http"
	"sync"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	UserUC        domain.UserUsecase
	HealthUC      domain.HealthUsecase
	PublicDir     string
}

var registerOnce sync.Once

// registerValidators adds the custom binding tags to gin's validator engine.
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

func NewRouter(deps RouterDeps) *gin.Engine {
	registerValidators()

	r := gin.New()
	// Lets handlers pass *gin.Context as a context.Context carrying request values and cancellation
	r.ContextWithFallback = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first so preflights short-circuit
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered", "request_id", c.GetString(middleware.RequestIDKey), "panic", recovered)
		response.Error(c, http.StatusInternalServerError, "Server error")
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	if deps.HealthUC != nil {
		api.GET("/health", func(c *gin.Context) {
			status := deps.HealthUC.Check(c)
			code := http.StatusOK
			if status.Database != "up" {
				code = http.StatusServiceUnavailable
			}
			response.JSON(c, code, status)
		})
	}

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewAuthHandler(api, deps.AuthUC)
	NewJobHandler(api, deps.JobUC)
	NewApplicationHandler(api, deps.ApplicationUC)
	NewUserHandler(api, deps.UserUC) // admin dashboard

	// Everything else is the bundled front-end
	r.NoRoute(StaticHandler(deps.PublicDir))

	return r
}
