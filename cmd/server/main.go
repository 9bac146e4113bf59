package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Drael0/site/internal/cache"
	"github.com/Drael0/site/internal/config"
	httptransport "github.com/Drael0/site/internal/http"
	"github.com/Drael0/site/internal/identity"
	"github.com/Drael0/site/internal/repository"
	"github.com/Drael0/site/internal/service"
	"github.com/Drael0/site/internal/session"
)

func main() {
	cfg := config.Load()

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.Mongo.URI)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Repositories
	products := repository.NewMongoProductRepository(mongoDB)
	users := repository.NewMongoUserRepository(mongoDB)
	carts := repository.NewMongoCartRepository(mongoDB)
	orders := repository.NewMongoOrderRepository(mongoDB)
	reviews := repository.NewMongoReviewRepository(mongoDB)

	if err := repository.SeedDefaultProducts(ctx, products); err != nil {
		log.Printf("Failed to seed default products: %v", err)
	}

	// Services
	sessions := session.NewStore(redisClient, cfg.Auth.SessionTTL, cfg.Auth.GuestSessionTTL)
	catalogCache := cache.NewRedisCatalogCache(redisClient)
	catalog := service.NewCatalogService(products, carts, catalogCache)
	cart := service.NewCartService(carts, products, sessions)
	checkout := service.NewCheckoutService(orders, cart)
	favorites := service.NewFavoritesService(users)
	reviewSvc := service.NewReviewService(reviews, products)
	state := service.NewStateService(catalog, cart, favorites, checkout)

	ids := identity.NewService(users, sessions, cfg.Auth.AdminSignupCode)
	if cfg.Auth.AdminSignupCode == "" {
		log.Printf("ADMIN_SIGNUP_CODE not set; admin registration disabled")
	}
	ids.OnSessionChange(func(userID string) {
		if userID == "" {
			log.Printf("session ended, domain state dropped")
			return
		}
		log.Printf("session started for user %s, domain state reloaded", userID)
	})

	router := httptransport.NewRouter(httptransport.Handlers{
		Auth:      httptransport.NewAuthHandler(ids, state),
		Session:   httptransport.NewSessionHandler(sessions),
		Products:  httptransport.NewProductHandler(catalog),
		Cart:      httptransport.NewCartHandler(cart),
		Checkout:  httptransport.NewCheckoutHandler(checkout),
		Favorites: httptransport.NewFavoritesHandler(favorites),
		Orders:    httptransport.NewOrderHandler(checkout),
		Reviews:   httptransport.NewReviewHandler(reviewSvc),
	}, ids, cfg.Server.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
	log.Println("server exited")
}
