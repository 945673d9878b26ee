package main

import (
	"encoding/json"
	"log"
	"os"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/entity"
)

// Writes a starter users.json with bcrypt-hashed passwords and an empty
// storage.json, so a fresh checkout can run the API immediately. Existing
// files are left alone.
func main() {
	usersPath := getEnv("USERS_FILE", "users.json")
	storagePath := getEnv("STORAGE_PATH", "storage.json")

	if _, err := os.Stat(usersPath); err == nil {
		log.Printf("%s already exists, skipping", usersPath)
	} else {
		users := []entity.User{
			{Username: "admin", IsAdmin: true, Token: "admin-token-1"},
			{Username: "reader", IsAdmin: false, Token: "reader-token-1"},
		}
		passwords := []string{"admin", "reader"}
		for i := range users {
			hash, err := auth.HashPassword(passwords[i])
			if err != nil {
				log.Fatalf("cannot hash password: %v", err)
			}
			users[i].PasswordHash = hash
		}

		data, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			log.Fatalf("cannot encode users: %v", err)
		}
		if err := os.WriteFile(usersPath, data, 0o600); err != nil {
			log.Fatalf("cannot write %s: %v", usersPath, err)
		}
		log.Printf("wrote %s (admin/admin, reader/reader)", usersPath)
	}

	if _, err := os.Stat(storagePath); err == nil {
		log.Printf("%s already exists, skipping", storagePath)
	} else {
		if err := os.WriteFile(storagePath, []byte("[]\n"), 0o644); err != nil {
			log.Fatalf("cannot write %s: %v", storagePath, err)
		}
		log.Printf("wrote empty %s", storagePath)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
