package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/routes/auth"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	firstName := flag.String("first-name", "System", "first name")
	lastName := flag.String("last-name", "Administrator", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		Username:  *username,
		Email:     *email,
		Password:  hashed,
		Role:      models.RoleAdmin,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, admin); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Admin account %s created (id %s)", admin.Email, admin.ID)
}
