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

	"github.com/gin-gonic/gin"

	"liftboard/workout-planner/internal/api"
	"liftboard/workout-planner/internal/catalog"
	"liftboard/workout-planner/internal/config"
	"liftboard/workout-planner/internal/planner"
	mongorepo "liftboard/workout-planner/internal/repository/mongo"
	"liftboard/workout-planner/internal/service"
	"liftboard/workout-planner/internal/storage"
)

func main() {
	log.Println("Starting Workout Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("FATAL: jwt.secret must be configured")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongorepo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongorepo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	exerciseRepo := mongorepo.NewMongoExerciseRepository(appDB)
	planRepo := mongorepo.NewMongoPlanRepository(appDB)

	// --- Load Exercise Catalog ---
	// The catalog is loaded once and immutable afterwards. An empty
	// collection is seeded with the built-in starter catalog so the app
	// works before any ingestion has run.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	exercises, err := exerciseRepo.GetAll(loadCtx)
	loadCancel()
	if err != nil {
		log.Fatalf("FATAL: Could not load exercise catalog: %v", err)
	}
	if len(exercises) == 0 {
		log.Println("Exercise collection is empty, seeding built-in catalog...")
		exercises = catalog.BuiltIn()
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := exerciseRepo.ReplaceAll(seedCtx, exercises); err != nil {
			log.Printf("ERROR: Failed to seed built-in catalog: %v", err)
		}
		seedCancel()
	}
	exerciseCatalog := catalog.New(exercises)
	log.Printf("Exercise catalog loaded: %d exercises.", exerciseCatalog.Len())

	// --- Load Templates ---
	templates, err := planner.BuiltInTemplates()
	if err != nil {
		log.Fatalf("FATAL: Could not parse built-in templates: %v", err)
	}

	// --- Initialize Archive Storage ---
	var archiveStorage storage.ArchiveStorage
	if cfg.S3.BucketName != "" {
		log.Println("Initializing export archive storage...")
		archiveStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No S3 bucket configured, export archiving disabled.")
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	catalogService := service.NewCatalogService(exerciseCatalog, catalog.DefaultAliases(), templates)
	planService := service.NewPlanService(planRepo, archiveStorage, exerciseCatalog, cfg.Sync.Debounce)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, catalogService, planService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	// Flush pending debounced saves so the last edits are not lost to the
	// coalescing window.
	planService.Flush(ctxShutdown)

	log.Println("Server exiting.")
}
