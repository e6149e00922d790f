package main

import (
	"context"
	"log"

	"MediSlot/cache"
	"MediSlot/config"
	"MediSlot/jobs"
	"MediSlot/migrations"
	"MediSlot/repository"
	"MediSlot/routes"
	"MediSlot/services"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

/*
* Mongo backed repositories when Mongo is enabled, in-memory otherwise
* Redis cache when the cache is enabled, in-memory otherwise
 */
func newService(opts server.Options, cfg *config.Config) *services.AvailabilityService {
	var c cache.Cache = cache.NewMemory(cfg.SummaryCacheTTL)
	if opts.CacheEnabled {
		c = cache.NewRedis(cfg.SummaryCacheTTL)
	}
	if !opts.MongoEnabled {
		log.Println("Mongo disabled, using in-memory repositories")
		mem := repository.NewMemory()
		return services.NewAvailabilityService(
			repository.MemoryAvailability{Memory: mem},
			repository.MemoryDoctors{Memory: mem},
			repository.MemoryBranches{Memory: mem},
			repository.MemoryStaff{Memory: mem},
			c,
		)
	}
	return services.NewAvailabilityService(
		repository.NewMongoAvailabilityRepository(),
		repository.NewMongoDoctorRepository(),
		repository.NewMongoBranchRepository(),
		repository.NewMongoStaffRepository(),
		c,
	)
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg := config.Load()

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled && !isTest,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,
	}
	if isTest {
		options.CacheEnabled = false
	}
	svc := newService(options, cfg)

	options.JobsEnabled = !isTest
	options.JobsHandler = func() {
		if isTest {
			return
		}
		if _, err := jobs.StartDailyScheduler(svc, cfg.SnapshotCron); err != nil {
			log.Println("Error from StartDailyScheduler: ", err)
		}
	}

	options.WebServerPreHandler = func(r *gin.Engine) {
		if isTest {
			return
		}
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
		routes.Routes(r, svc)
	}

	options.MigrationEnabled = cfg.MigrationsEnabled && !isTest
	options.MigrationHandler = func() {
		if isTest {
			return
		}
		if err := migrations.Run(context.Background()); err != nil {
			log.Fatal("Migration failed:", err)
		}
	}
	startServer(options)
}
