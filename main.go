package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dorata/admin"
	"dorata/cart"
	"dorata/db"
	"dorata/feed"
	"dorata/middleware"
	"dorata/models"
	"dorata/mq"
	"dorata/notifier"
	"dorata/orders"
	"dorata/ratelim"
	"dorata/rdx"
	"dorata/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rateLimiter := ratelim.NewRateLimiter()

	// order store over Mongo, with change fan-out
	store := orders.NewStore(orders.NewMongoPersistence(db.OrdersCollection))

	// live feed hub + notifier, fed through the Redis relay so every
	// instance's admins converge
	hub := feed.NewHub()
	go hub.Run()
	alerts := notifier.New()
	go mq.StartOrderRelay(context.Background(), hub, alerts)
	unsubscribe := store.Subscribe(func(ev models.OrderEvent) {
		mq.Emit(context.Background(), ev)
	})

	// customer cart sessions, in-memory only
	sessions := cart.NewSessions()

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddCatalogRoutes(router)
	routes.AddCartRoutes(router, cart.NewHandler(sessions))
	routes.AddOrderRoutes(router, orders.NewHandler(store, sessions), rateLimiter)
	routes.AddAdminRoutes(router, admin.NewHandler(store, admin.NewPINAuthorizer(), alerts), rateLimiter)
	routes.AddFeedRoutes(router, hub, store, &admin.RoleAuthorizer{Role: middleware.RoleAdmin})

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", cart.SessionHeader},
		ExposedHeaders:   []string{cart.SessionHeader},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down order feed...")
		unsubscribe()
		hub.Stop()
		sessions.Stop()
		if err := rdx.Conn.Close(); err != nil {
			log.Println("redis close:", err)
		}
		if err := db.Client.Disconnect(context.Background()); err != nil {
			log.Println("mongo disconnect:", err)
		}
	})

	// start server
	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
