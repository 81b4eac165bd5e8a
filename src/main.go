package main

import (
	_ "Backend-FormBuilder/docs"
	"Backend-FormBuilder/src/config"
	"Backend-FormBuilder/src/database"
	"Backend-FormBuilder/src/jobs"
	"Backend-FormBuilder/src/repository"
	"Backend-FormBuilder/src/routes"
	"Backend-FormBuilder/src/seeder"
	submissionService "Backend-FormBuilder/src/services/submission"
	templateService "Backend-FormBuilder/src/services/templates"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title        Form Builder API
// @version      1.0
// @description  Form templates and their submissions.
// @BasePath     /api
func main() {
	cfg := config.Load()

	// เลือก store ตาม STORE_DRIVER
	var (
		templates   repository.TemplateStore
		submissions repository.SubmissionStore
	)
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("❌ Error connecting to the database: %v", err)
		}
		store := repository.NewMongoStore(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Println("⚠️ index setup failed:", err)
		}
		cancel()

		templates, submissions = store, store
	case config.DriverMemory:
		log.Println("⚠️ Using in-memory store. Data is lost on restart.")
		store := repository.NewMemoryStore()
		templates, submissions = store, store
	default:
		log.Fatalf("❌ unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// Redis: cache + task queue (optional)
	var notifier submissionService.Notifier
	var worker *jobs.Worker
	if cfg.RedisURI != "" {
		rdb, err := database.InitRedis(cfg.RedisURI)
		if err != nil {
			log.Println("⚠️ Redis unavailable, running without cache and receipts:", err)
		} else {
			log.Println("✅ Redis connected successfully")
			templates = repository.NewCachedTemplateStore(templates,
				repository.NewRedisTemplateCache(rdb, cfg.TemplateCacheTTL))

			if client := database.InitAsynq(cfg.RedisURI); client != nil {
				// notifier ต้องมี worker คอยรับ task เสมอ
				n, w, err := jobs.SetupReceipts(cfg.RedisURI, cfg.SMTP, client)
				if err == nil {
					err = w.Start()
				}
				if err != nil {
					log.Println("⚠️ receipt e-mails disabled:", err)
				} else {
					notifier, worker = n, w
				}
			}
		}
	}

	if cfg.SeedSamples {
		seedSamples(templates, submissions)
	}

	app := routes.NewApp(routes.Deps{
		Templates:      templates,
		Submissions:    submissions,
		Notifier:       notifier,
		RequestTimeout: cfg.RequestTimeout,
	}, cfg.AllowedOrigins)

	// signal.Notify requires the channel to be buffered
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Println("❌ shutdown:", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Println("❌ server:", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	if database.RedisClient != nil {
		_ = database.RedisClient.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(ctx); err != nil {
		log.Println("❌ MongoDB disconnect:", err)
	}
}

// seedSamples ใส่ template ตัวอย่างพร้อม submission ละหนึ่งรายการ
func seedSamples(templates repository.TemplateStore, submissions repository.SubmissionStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := seeder.SeedSampleTemplates(ctx, templateService.NewService(templates))
	if err != nil {
		log.Println("❌ seed templates:", err)
		return
	}
	subs := submissionService.NewService(templates, submissions, nil)
	for _, tmpl := range created {
		if err := seeder.SeedSampleSubmissions(ctx, subs, tmpl); err != nil {
			log.Printf("⚠️ sample submission for '%s' skipped: %v", tmpl.Title, err)
		}
	}
}
