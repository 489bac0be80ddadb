package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/storage"
)

// Handler wires the HTTP layer to services, upload storage and logging.
type Handler struct {
	services *service.Service
	store    *storage.Store
	log      *logger.Logger
}

func NewHandler(services *service.Service, store *storage.Store, log *logger.Logger) *Handler {
	return &Handler{services: services, store: store, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default()) // public API consumed from any origin
	router.MaxMultipartMemory = storage.MaxUploadSize

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Stored files, with and without the /api prefix
	router.GET("/uploads/:filename", h.serveUpload)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)

		api.GET("/portfolio/:user_id", h.getPortfolio)
		api.POST("/contact", h.contact)
		api.GET("/uploads/:filename", h.serveUpload)
		api.GET("/debug/token", h.debugToken)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.POST("/signup", h.signUp)
		user.POST("/login", h.login)
		user.POST("/forgot-password", h.forgotPassword)
		user.POST("/reset-password", h.resetPassword)
	}

	protected := user.Group("", h.userIdMiddleware)
	{
		protected.GET("/profile", h.getProfile)
		protected.PUT("/profile", h.updateProfile)
		protected.GET("/projects", h.listProjects)
		protected.POST("/projects", h.createProject)
		protected.PUT("/projects/:id", h.updateProject)
		protected.DELETE("/projects/:id", h.deleteProject)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// serviceError converts a service-layer error into the response taxonomy.
// Ownership mismatches arrive here already folded into not-found.
func (h *Handler) serviceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found or unauthorized"})
	case errors.Is(err, service.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, service.ErrDelivery):
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to send message", logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err, kv...)
	}
}

// bindJSON binds the request body into dst. A syntactically broken payload
// yields 422, a payload failing field validation 400. Returns false if the
// request was already answered.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if h.log != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input data"})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}
