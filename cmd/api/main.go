package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"triply/internal/config"
	"triply/internal/db"
	"triply/internal/httpserver"
	cartrepo "triply/internal/repository/cart"
	destinationrepo "triply/internal/repository/destination"
	postrepo "triply/internal/repository/post"
	productrepo "triply/internal/repository/product"
	adminsvc "triply/internal/service/admin"
	authsvc "triply/internal/service/auth"
	cartsvc "triply/internal/service/cart"
	catalogsvc "triply/internal/service/catalog"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	productRepo := productrepo.NewSQLite(conn, logger)
	postRepo := postrepo.NewSQLite(conn, logger)
	destinationRepo := destinationrepo.NewSQLite(conn, logger)
	cartRepo := cartrepo.NewSQLite(conn, logger)

	catalogService := catalogsvc.New(productRepo, postRepo, destinationRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	adminService := adminsvc.New(productRepo, postRepo, destinationRepo)
	authService := authsvc.New()

	gin.SetMode(gin.ReleaseMode)
	srv, err := httpserver.New(cfg.HTTPAddr, logger, conn, httpserver.Deps{
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		AdminSvc:   adminService,
		AuthSvc:    authService,
	}, cfg.CORSOrigin)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
