package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"naebak/content-service/internal/config"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/services"
)

//go:embed reference.yaml
var embeddedDataset []byte

func main() {
	file := flag.String("file", "", "YAML dataset to load instead of the embedded one")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if err := logging.Init(constants.ServiceName, cfg.AppEnv, cfg.LogLevel); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	orm, sqlDB, err := db.Connect(cfg)
	if err != nil {
		logging.Fatal("Failed to open database", "error", err.Error())
	}
	defer sqlDB.Close()

	var reader io.Reader = bytes.NewReader(embeddedDataset)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			logging.Fatal("Failed to open dataset", "file", *file, "error", err.Error())
		}
		defer f.Close()
		reader = f
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stats, err := services.NewReferenceLoader(orm).LoadFromYAML(ctx, reader)
	if err != nil {
		logging.Fatal("Seeding failed", "error", err.Error())
	}
	logging.Info("Seeding finished", "created", stats.Created, "updated", stats.Updated, "skipped", stats.Skipped)
}
