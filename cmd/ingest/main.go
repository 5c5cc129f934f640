// Command ingest transforms a third-party exercise-database export into
// catalog records and replaces the stored catalog with them.
//
//	ingest -input api_exercises.json [-config .] [-dry-run]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"liftboard/workout-planner/internal/config"
	"liftboard/workout-planner/internal/ingest"
	mongorepo "liftboard/workout-planner/internal/repository/mongo"
)

func main() {
	inputPath := flag.String("input", "", "path to the exercise export JSON file")
	configPath := flag.String("config", ".", "directory containing config.yaml")
	dryRun := flag.Bool("dry-run", false, "transform and report without writing to the database")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	file, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("FATAL: Could not open export file: %v", err)
	}
	defer file.Close()

	export, err := ingest.Parse(file)
	if err != nil {
		log.Fatalf("FATAL: Could not parse export file: %v", err)
	}

	exercises := ingest.Transform(export.Data)
	log.Printf("Transformed %d of %d source records (dropped records had no mappable primary muscle or a duplicate id).",
		len(exercises), len(export.Data))

	if *dryRun {
		log.Println("Dry run, not writing to the database.")
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongorepo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()

	exerciseRepo := mongorepo.NewMongoExerciseRepository(dbClient.Database(cfg.Database.Name))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := exerciseRepo.ReplaceAll(ctx, exercises); err != nil {
		log.Fatalf("FATAL: Could not replace exercise catalog: %v", err)
	}

	log.Printf("Stored %d exercises.", len(exercises))
}
