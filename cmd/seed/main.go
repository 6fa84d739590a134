package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"userbase/internal/auth"
	"userbase/internal/config"
	"userbase/internal/db"
	"userbase/internal/model"
	"userbase/internal/repository"
	"userbase/internal/service"
)

// seedUser is one entry of the seed file: a JSON array of name/password pairs.
type seedUser struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func main() {
	file := flag.String("file", "seed_users.json", "path to a JSON array of {name, password}")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(db.DSN(cfg))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var users []seedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	// Seeding goes through the service so passwords are hashed and
	// duplicate names are skipped, exactly as the API would do it.
	userService := service.NewUserService(userRepo, hasher, nil)

	created := 0
	for _, u := range users {
		if u.Name == "" || u.Password == "" {
			log.Printf("Skipping entry with missing name or password")
			continue
		}
		id, err := userService.CreateUser(context.Background(), u.Name, u.Password)
		if err != nil {
			log.Printf("Skipping %q: %v", u.Name, err)
			continue
		}
		log.Printf("Created user %q with id %d", u.Name, id)
		created++
	}

	log.Printf("Seed complete: %d of %d users created", created, len(users))
}
