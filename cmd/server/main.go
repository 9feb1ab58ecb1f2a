package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/nexa-crm/internal/config"
	"github.com/diewo77/nexa-crm/internal/db"
	"github.com/diewo77/nexa-crm/internal/server"
	"github.com/diewo77/nexa-crm/internal/state"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Applique les migrations puis quitte")

func main() {
	flag.Parse()

	// Variables d'environnement depuis .env si présent
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration invalide: %v", err)
	}

	conn, err := db.ConnectAndMigrate(db.Options{
		DSN:        cfg.DatabaseDSN,
		Migrations: cfg.Migrations,
		Debug:      cfg.DBDebug,
	})
	if err != nil {
		log.Fatalf("Connexion à la base impossible: %v", err)
	}

	if *migrateOnlyFlag {
		log.Println("Migrations terminées")
		return
	}

	local := state.NewFileStore(cfg.StatePath)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(conn, local),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Serveur démarré sur le port %s (env=%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Erreur serveur: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Signal d'arrêt reçu")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Erreur pendant l'arrêt: %v", err)
	}
	log.Println("Serveur arrêté proprement")
}
