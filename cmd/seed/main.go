// Seed tool: writes the built-in housing listings into MongoDB so the server
// can run with SEED_SOURCE=mongo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"griya/mdp/internal/catalog"
	"griya/mdp/internal/config"
	"griya/mdp/internal/db"
)

func main() {
	var drop bool
	flag.BoolVar(&drop, "drop", false, "drop the housing collection before seeding")
	flag.Parse()

	if err := run(drop); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(drop bool) (err error) {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn := db.NewConnection(log.Default())
	if err := conn.Open(ctx, cfg.MongoURI, cfg.MongoDbName); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, conn.Close(context.Background()))
	}()

	database := conn.Database()
	if drop {
		if err := database.Collection(catalog.HousingCollection).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop %s: %w", catalog.HousingCollection, err)
		}
		log.Printf("dropped %s", catalog.HousingCollection)
	}

	start := time.Now()
	inserted, skipped, err := catalog.SeedMongo(ctx, database, catalog.SampleHousing())
	if err != nil {
		return err
	}
	log.Printf("seeded %s.%s: inserted=%d skipped=%d in %s",
		cfg.MongoDbName, catalog.HousingCollection, inserted, skipped, time.Since(start).Truncate(time.Millisecond))
	return nil
}
