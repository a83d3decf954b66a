package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/c2399750-bit/Mido-Store/internal/auth"
	"github.com/c2399750-bit/Mido-Store/internal/cart"
	"github.com/c2399750-bit/Mido-Store/internal/categories"
	"github.com/c2399750-bit/Mido-Store/internal/config"
	"github.com/c2399750-bit/Mido-Store/internal/copywriter"
	"github.com/c2399750-bit/Mido-Store/internal/db"
	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/mail"
	"github.com/c2399750-bit/Mido-Store/internal/orders"
	"github.com/c2399750-bit/Mido-Store/internal/products"
	"github.com/c2399750-bit/Mido-Store/internal/session"
	"github.com/c2399750-bit/Mido-Store/internal/shipping"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,

		Timeout: time.Duration(cfg.SMTPTimeoutSec) * time.Second,
	})

	writer, err := copywriter.New(ctx, copywriter.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
	if err != nil {
		log.Fatal(err)
	}

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:       cfg.JWTIssuer,
		AccessSecret: cfg.JWTAccessSecret,
		AccessTTLMin: cfg.AccessTokenTTLMin,
	})

	// State repos, each restored from its own slice of the store
	sess, err := session.New(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	prodRepo, err := products.NewRepo(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	catRepo, err := categories.NewRepo(ctx, store, prodRepo)
	if err != nil {
		log.Fatal(err)
	}
	cartRepo, err := cart.NewRepo(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	zoneRepo, err := shipping.NewRepo(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	orderRepo, err := orders.NewRepo(ctx, store)
	if err != nil {
		log.Fatal(err)
	}

	authSvc, err := auth.NewService(auth.ServiceConfig{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}, sess)
	if err != nil {
		log.Fatal(err)
	}

	h := auth.NewHandler(auth.Dependencies{
		Service: authSvc,
		JWT:     jwtMgr,
		Session: sess,
		Cart:    cartRepo,
	})
	sessHandler := session.NewHandler(sess, cartRepo)
	prodHandler := products.NewHandler(prodRepo, sess, writer)
	catHandler := categories.NewHandler(catRepo)
	cartHandler := cart.NewHandler(cartRepo, prodRepo)
	zoneHandler := shipping.NewHandler(zoneRepo)
	checkout := orders.NewCheckout(orderRepo, cartRepo, zoneRepo, mailer)
	orderHandler := orders.NewHandler(orderRepo, checkout, prodRepo)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api := r.Group("/api")

	// Storefront (no login required)
	api.GET("/products", prodHandler.ListPublic)
	api.GET("/products/:id", prodHandler.GetPublic)
	api.GET("/categories", catHandler.List)
	api.GET("/shipping-zones", zoneHandler.List)

	api.GET("/cart", cartHandler.GetCart)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PATCH("/cart/items", cartHandler.UpdateQty)
	api.DELETE("/cart/items", cartHandler.RemoveItem)

	api.GET("/session", sessHandler.Get)
	api.POST("/session/navigate", sessHandler.Navigate)
	api.POST("/session/lang", sessHandler.SetLang)
	api.POST("/session/search", sessHandler.SetSearch)
	api.POST("/session/cart", sessHandler.SetCart)
	api.POST("/session/checkout", sessHandler.Checkout)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/logout", h.Logout)
	}

	protected := api.Group("/")
	protected.Use(auth.AuthMiddleware(jwtMgr, sess))
	{
		protected.GET("/me", h.Me)
		protected.PATCH("/me", h.UpdateMe)
		protected.POST("/me/addresses", h.AddAddress)
		protected.DELETE("/me/addresses/:index", h.RemoveAddress)
		protected.PUT("/me/avatar", h.SetAvatar)
		protected.DELETE("/me/avatar", h.DeleteAvatar)
		protected.GET("/me/orders", orderHandler.MyOrders)

		protected.POST("/products/:id/reviews", prodHandler.AddReview)
		protected.POST("/checkout/quote", orderHandler.Quote)
		protected.POST("/checkout", orderHandler.Place)

		adminOnly := protected.Group("/admin")
		adminOnly.Use(auth.RequireRole(user.RoleAdmin))

		adminOnly.GET("/stats", orderHandler.AdminStats)

		adminOnly.GET("/products", prodHandler.AdminList)
		adminOnly.POST("/products", prodHandler.AdminCreate)
		adminOnly.POST("/products/draft", prodHandler.AdminDraft)
		adminOnly.PUT("/products/:id", prodHandler.AdminUpdate)
		adminOnly.DELETE("/products/:id", prodHandler.AdminDelete)

		adminOnly.POST("/categories", catHandler.AdminCreate)
		adminOnly.DELETE("/categories/:name", catHandler.AdminDelete)

		adminOnly.POST("/shipping-zones", zoneHandler.AdminCreate)
		adminOnly.PUT("/shipping-zones/:id", zoneHandler.AdminUpdate)
		adminOnly.DELETE("/shipping-zones/:id", zoneHandler.AdminDelete)

		adminOnly.GET("/orders", orderHandler.AdminList)
		adminOnly.PATCH("/orders/:id/status", orderHandler.AdminSetStatus)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s (store: %s)", cfg.HTTPAddr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
		defer cancel()
		log.Printf("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Printf("server stopped: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kv.NewMemory(), nil
	case "leveldb":
		return kv.OpenLevelDB(cfg.LevelDBPath)
	case "postgres":
		pool, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store, err := kv.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
