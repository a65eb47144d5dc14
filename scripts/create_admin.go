package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// User mirrors the application's users table so the script can run against a
// database file without importing the server packages.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null;default:'cashier'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Creates a user directly in the database file. Recovery tool for when no
// admin account can sign in through the API.
func main() {
	dbPath := flag.String("db", "chai_and_grill.sqlite", "Path to the SQLite database file")
	name := flag.String("name", "admin", "User name")
	password := flag.String("password", "", "Password (required)")
	role := flag.String("role", "admin", "User role (admin or cashier)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}
	if *role != "admin" && *role != "cashier" {
		log.Fatalf("invalid role %q: must be admin or cashier", *role)
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var existing User
	if err := db.Where("name = ?", *name).First(&existing).Error; err == nil {
		log.Fatalf("user %q already exists (id %d, role %s)", existing.Name, existing.ID, existing.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := User{Name: *name, Password: string(hash), Role: *role}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Created user %q (id %d, role %s)\n", user.Name, user.ID, user.Role)
	fmt.Println("\nSign in with:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/auth/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"name\": %q, \"password\": \"<password>\"}'\n", *name)
}
