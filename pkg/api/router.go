package api

import (
	"net/http"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/handlers"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller device.Controller
	validator  *schema.Validator
	dispatch   dispatch.Options
}

// NewRouter creates a new API router
func NewRouter(controller device.Controller, validator *schema.Validator, opts dispatch.Options) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
		validator:  validator,
		dispatch:   opts,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	healthHandler := handlers.NewHealthHandler(r.controller)
	r.engine.GET("/health", healthHandler.Health)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		commandsHandler := handlers.NewCommandsHandler(r.controller, r.validator, r.dispatch)
		commands := v1.Group("/commands")
		{
			commands.GET("", commandsHandler.ListCommands)
			commands.POST("/send", commandsHandler.SendCommand)
		}

		hubHandler := handlers.NewHubHandler(r.controller)
		v1.GET("/hub/status", hubHandler.Status)
	}
}

// Handler returns the router as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
