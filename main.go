package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Kepler-Interactive/CompAI/internal/config"
	"github.com/Kepler-Interactive/CompAI/internal/db"
	"github.com/Kepler-Interactive/CompAI/internal/frameworks"
	"github.com/Kepler-Interactive/CompAI/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 2 * time.Minute
)

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	d := db.Connect(cfg)
	frameworks.Init(d)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	store := frameworks.NewGormStore(d)
	r.Mount("/api/frameworks", frameworks.SetupRoutes(store, middleware.NewLimiter(cfg.SeedRatePerMinute)))

	log.Printf("Server listening on %s...", cfg.Addr())
	if err := newServer(cfg.Addr(), r).ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
