package server

import (
	"context"
	"net/http"

	"parkspot/internal/auth"
	"parkspot/internal/booking"
	"parkspot/internal/config"
	"parkspot/internal/dashboard"
	"parkspot/internal/email"
	"parkspot/internal/spot"
	"parkspot/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	spotRepo := spot.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	spotHandler := spot.NewHandler(spot.NewService(spotRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, spotRepo, emailService))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboardRepo))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/spots", spotHandler.ListSpots)
		protected.GET("/spots/available", bookingHandler.AvailableSpots)
		protected.GET("/spots/:spotID", spotHandler.GetSpot)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/spots", spotHandler.CreateSpot)
		admin.GET("/spots", spotHandler.ListSpots)
		admin.PUT("/spots/:spotID", spotHandler.UpdateSpot)
		admin.DELETE("/spots/:spotID", spotHandler.DeleteSpot)
		admin.PATCH("/spots/:spotID/availability", spotHandler.SetAvailability)
		admin.GET("/spots/:spotID/bookings", bookingHandler.ListBookingsBySpot)
		admin.POST("/bookings/:bookingID/complete", bookingHandler.CompleteBooking)
		admin.GET("/users", userHandler.ListUsers)
		admin.PATCH("/users/:userID/active", userHandler.SetActive)
		admin.GET("/dashboard", dashboardHandler.GetStats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
