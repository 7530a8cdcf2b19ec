package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"click-collect/internal/handler/api"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Favorite *api.FavoriteHandler
	Cart     *api.CartHandler
	Order    *api.OrderHandler
	Payment  *api.PaymentHandler
	Upload   *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.NoRoute(middleware.NotFound())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateMe},
				{Method: http.MethodPost, Path: "/request-2fa", Handler: h.Auth.RequestTwoFactor},
				{Method: http.MethodPost, Path: "/verify-2fa", Handler: h.Auth.VerifyTwoFactor},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.ListCategories},
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/products/suggest", Handler: h.Catalog.Suggest},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/products/:id/ratings", Handler: h.Catalog.ListRatings},
			{Method: http.MethodPost, Path: "/products/:id/ratings", Handler: h.Catalog.Rate, Mw: []gin.HandlerFunc{requireAuth}},

			{Method: http.MethodGet, Path: "/pickup-slots", Handler: h.Order.ListSlots},
			{Method: http.MethodPost, Path: "/payments/initiate", Handler: h.Payment.Initiate},
			{Method: http.MethodGet, Path: "/config/policy", Handler: h.Payment.Policy},
			{Method: http.MethodGet, Path: "/upload/cloudinary-signature", Handler: h.Upload.Signature, Mw: []gin.HandlerFunc{requireAuth}},
		})

		favorites := apiGroup.Group("/favorites")
		favorites.Use(requireAuth)
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorite.List},
				{Method: http.MethodPost, Path: "/:productId", Handler: h.Favorite.Add},
				{Method: http.MethodDelete, Path: "/:productId", Handler: h.Favorite.Remove},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(optionalAuth)
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: []gin.HandlerFunc{optionalAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/resend-confirmation", Handler: h.Order.ResendConfirmation, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs per-route middleware ahead of the handler, stopping at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
