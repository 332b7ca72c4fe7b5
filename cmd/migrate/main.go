package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
)

func main() {
	log.Println("Running schema migration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully")
}
