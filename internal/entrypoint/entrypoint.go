package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"isbndb/internal/config"
	http_controllers "isbndb/internal/http"
	"isbndb/internal/isbndb"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the lookup driver into the HTTP API and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting ISBNdb lookup driver v%s", version)

	if cfg.API.AccessKey == "" {
		if _, err := config.ResolveAccessKey(""); err != nil {
			log.Printf("WARNING: no access key found. Set %s or place a %s key file in the current or home directory; lookups will fail until one is provided.",
				config.AccessKeyEnvVar, config.AccessKeyFileName)
		}
	}

	client := isbndb.NewClient(cfg.API)
	driver := isbndb.NewDriver(client)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Driver:  driver,
		API:     cfg.API,
		Version: version,
	})

	Serve(router, cfg)
}
