package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lensline/eyewear-api/internal/config"
	"github.com/lensline/eyewear-api/pkg/catalog"
)

// main lists the catalog through the client data-access layer, exactly the
// way a UI consumer would: remote when reachable, backup otherwise.
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.LoadClient()

	backup, err := catalog.OpenBackup(cfg.BackupPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open backup store")
	}
	defer backup.Close()

	client, err := catalog.New(catalog.Config{
		Host:    cfg.Host,
		BaseURL: cfg.BaseURL,
		Backup:  backup,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build catalog client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := client.ListProducts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list catalog")
	}

	for _, p := range products {
		fmt.Printf("%4d  %-30s  %-18s  %8.2f  %s\n", p.ID, p.Name, p.Category, p.Price, p.Status)
	}
	fmt.Printf("%d products\n", len(products))
}
