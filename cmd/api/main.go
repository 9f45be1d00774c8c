package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/audit"
	"github.com/BruksfildServices01/petcare-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/petcare-marketplace/internal/db"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/rabbitmq"
	"github.com/BruksfildServices01/petcare-marketplace/internal/media"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/routes"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

const (
	rabbitConnectAttempts   = 5
	notificationHistorySize = 50
)

func main() {

	cfg := config.Load()

	kvStore, db, closeStore := dbpkg.NewStore(cfg)
	defer closeStore()

	holder := state.NewHolder(context.Background(), state.NewStore(kvStore))

	ids := idgen.New(time.Now)
	ids.Observe(holder.Current().MaxID())

	// --------------------------------------------------
	// Notifications
	// --------------------------------------------------
	history := notify.NewHistory(notificationHistorySize)
	sinks := []notify.Sink{notify.LogSink{}, history}

	if db != nil {
		sinks = append(sinks, audit.New(db))
	}

	if cfg.RabbitMQURL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQURL, rabbitConnectAttempts)
		if err != nil {
			log.Printf("notifications will not be published: %v", err)
		} else {
			defer conn.Close()

			publisher, err := rabbitmq.NewPublisher(conn)
			if err != nil {
				log.Fatalf("failed to create publisher: %v", err)
			}
			defer publisher.Close()

			sinks = append(sinks, notify.NewBrokerSink(publisher))
		}
	}

	dispatcher := notify.NewDispatcher(sinks...)
	defer dispatcher.Close()

	// --------------------------------------------------
	// Media
	// --------------------------------------------------
	var images *media.PetImages
	if cfg.MediaEnabled() {
		images = media.NewPetImages(media.NewS3Uploader(media.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		}), media.DefaultMaxSide)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, holder, ids, dispatcher, history, images)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
}
