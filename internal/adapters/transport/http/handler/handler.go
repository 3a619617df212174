package handler

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/condiments/condiments-api/internal/adapters/transport/http/dto"
	"github.com/condiments/condiments-api/internal/adapters/transport/http/middleware"
	authsvc "github.com/condiments/condiments-api/internal/app/auth/service"
	entitysvc "github.com/condiments/condiments-api/internal/app/entity/service"
	"github.com/condiments/condiments-api/internal/domain/auth/jwt"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

type Handler struct {
	auth     authsvc.Service
	entities entitysvc.Service
	tokens   jwt.TokenVerifier
	log      *zap.Logger
}

func NewHandler(auth authsvc.Service, entities entitysvc.Service, tokens jwt.TokenVerifier, log *zap.Logger) *Handler {
	return &Handler{auth: auth, entities: entities, tokens: tokens, log: log}
}

type RouterOptions struct {
	AllowedOrigins   []string
	AllowCredentials bool
	Metrics          *middleware.Metrics
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(h.log))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler())
	}

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{
				"Origin", "Content-Type", "Accept",
				"Authorization",
				"X-Requested-With",
			},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: opts.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	api := router.Group("/api")
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)

	entities := api.Group("/assigned_entity", middleware.RequireAuth(h.tokens))
	entities.POST("", h.createEntity)
	entities.GET("", h.listEntities)
	entities.GET("/:id", h.getEntity)
	entities.PUT("", h.updateEntity)
	entities.DELETE("/:id", h.deleteEntity)

	return router
}

func (h *Handler) register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	h.log.Info("/register", zap.String("user", hashedName(body.Username)))

	user, err := h.auth.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err, "registration failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "id": user.ID})
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		return
	}
	h.log.Info("/login", zap.String("user", hashedName(body.Username)))

	token, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err, "login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token.Value,
		"expiresIn": int(token.TTL.Seconds()),
	})
}

// logout never fails and never invalidates anything: tokens are stateless
// and remain usable until they expire.
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) createEntity(c *gin.Context) {
	var body dto.CreateEntityDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	e, err := h.entities.Create(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err, "failed to create entity")
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) listEntities(c *gin.Context) {
	list, err := h.entities.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "failed to fetch entities")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getEntity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}
	e, err := h.entities.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "failed to fetch entity")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) updateEntity(c *gin.Context) {
	var body dto.UpdateEntityDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	if err := h.entities.Update(c.Request.Context(), body); err != nil {
		h.handleError(c, err, "failed to update entity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entity updated"})
}

// deleteEntity answers 200 whether or not the row existed; an id that is
// not a number cannot match a row either.
func (h *Handler) deleteEntity(c *gin.Context) {
	id, ok := pathID(c)
	if ok {
		if err := h.entities.Delete(c.Request.Context(), id); err != nil {
			h.handleError(c, err, "failed to delete entity")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "entity deleted"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// handleError maps domain errors to a status and a terse message. Internal
// details go to the log only.
func (h *Handler) handleError(c *gin.Context, err error, internalMsg string) {
	switch {
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
	case customErrors.IsUnauthenticated(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
	case customErrors.IsInvalidToken(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

func hashedName(username string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(username)))
}
