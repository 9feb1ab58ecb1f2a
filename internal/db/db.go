// Package db ouvre la base et applique le schéma. Le DSN choisit le pilote :
// préfixe postgres:// pour PostgreSQL, un chemin de fichier pour SQLite.
package db

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Enregistrement du pilote postgres et de la source fichier pour golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/nexa-crm/internal/entity"
)

type Options struct {
	DSN string
	// Migrations runs SQL migrations from ./migrations instead of
	// AutoMigrate. Postgres only.
	Migrations bool
	Debug      bool
}

func IsPostgresDSN(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

func maskDSN(dsn string) string {
	if userinfo, rest, ok := strings.Cut(dsn, "@"); ok {
		if i := strings.Index(userinfo, "//"); i >= 0 && strings.Contains(userinfo[i+2:], ":") {
			return userinfo[:strings.LastIndex(userinfo, ":")+1] + "***@" + rest
		}
	}
	return passwordRegex.ReplaceAllString(dsn, `${1}***`)
}

// ConnectAndMigrate opens the database with a retry loop, checks
// connectivity, then applies the schema.
func ConnectAndMigrate(opts Options) (*gorm.DB, error) {
	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN est vide, vérifiez la configuration de l'environnement")
	}
	logLevel := logger.Silent
	if opts.Debug {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	dialector := sqlite.Open(dsn)
	if IsPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		log.Println("Nouvelle tentative de connexion à la base...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connexion à la base impossible après plusieurs tentatives: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Println("[DB] DSN utilisé:", maskDSN(dsn))

	if opts.Migrations && IsPostgresDSN(dsn) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else if err := entity.NewStore(db).Migrate(); err != nil {
		return nil, fmt.Errorf("automigrate records: %w", err)
	}

	if !db.Migrator().HasTable("records") {
		return nil, fmt.Errorf("missing table after migration: records")
	}
	return db, nil
}

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
