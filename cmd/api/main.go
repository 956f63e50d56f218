package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"assetcore/internal/httpserver"
	"assetcore/internal/logger"
	"assetcore/internal/store"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	var s store.Store
	switch driver := os.Getenv("STORE_DRIVER"); driver {
	case "", "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			lg.Fatalw("DATABASE_URL is empty")
		}
		orm, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lg.Fatalw("db connect failed", "error", err)
		}
		if err := store.Migrate(orm); err != nil {
			lg.Fatalw("automigrate failed", "error", err)
		}
		s = store.NewDB(orm)
	case "memory":
		s = store.NewMemory()
	default:
		lg.Fatalw("unknown STORE_DRIVER", "driver", driver)
	}

	if err := store.Seed(context.Background(), s, lg); err != nil {
		lg.Fatalw("seed failed", "error", err)
	}

	router := httpserver.NewRouter(s, lg)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
