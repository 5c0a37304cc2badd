package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bluedock/config"
	"bluedock/database"
	"bluedock/middleware"
	"bluedock/router"
	"bluedock/service"
	"bluedock/store"

	_ "github.com/joho/godotenv/autoload"
)

// @title BlueDock API
// @version 1.0
// @description Service-order tracker for a repair shop: orders, categories and dashboard aggregates
// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	demoCount   int
)

func init() {
	flag.StringVar(&configFile, "config", "", "external config file (optional)")
	flag.StringVar(&configFile, "c", "", "external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 3001 or :3001")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
	flag.IntVar(&demoCount, "demo", 0, "insert N fake service orders on start")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Printf("BlueDock v%s", version)
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port from command line: %s", port)
	}

	config.PrintConfig()

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()

	st := store.NewGormStore(db)

	if demoCount > 0 {
		if err := database.SeedDemo(context.Background(), st, demoCount); err != nil {
			log.Fatalf("demo data: %v", err)
		}
	}

	publisher, err := service.NewPublisher(cfg.Events)
	if err != nil {
		log.Fatalf("event publisher: %v", err)
	}
	notifier := service.NewNotifier(publisher, service.NewEmailService(&cfg.Email))
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Printf("close notifier: %v", err)
		}
	}()

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, st, notifier)
	srv := &http.Server{Addr: cfg.Server.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("==========================================")
		log.Printf("  BlueDock service-order API")
		log.Printf("==========================================")
		log.Printf("  API:     http://localhost%s/api/services", cfg.Server.Port)
		log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
		log.Printf("==========================================")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	log.Println("bye")
}
