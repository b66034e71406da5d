// Command create-admin creates an admin account, or resets the password of an
// existing one.
//
//	go run ./cmd/create-admin -email admin@example.com [-password secret]
//
// When -password is omitted a random password is generated and printed once.
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"job-portal-backend/config"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/security"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (generated when empty)")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	generated := false
	if *password == "" {
		p, err := randomPassword()
		if err != nil {
			log.Fatalf("Error generating password: %v", err)
		}
		*password = p
		generated = true
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DSN(), 1)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	hash, err := security.NewBcryptHasher(cfg.BcryptCost).Hash(*password)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	admin := &domain.Admin{Email: *email, Password: hash}
	if err := postgres.NewAdminRepository(pool).Upsert(ctx, admin); err != nil {
		log.Fatalf("Error saving admin: %v", err)
	}

	fmt.Printf("Admin: %s (admin_id %d)\n", admin.Email, admin.ID)
	if generated {
		fmt.Printf("Password: %s\n", *password)
	}
}

func randomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
