package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "plaintext password (required)")
	fullName := flag.String("name", "", "full name (required)")
	role := flag.String("role", string(models.RoleContentMaker), "user role")
	soloPercentage := flag.Int("solo-percentage", 50, "solo maker payout percentage")
	flag.Parse()

	if *email == "" || *password == "" || *fullName == "" {
		flag.Usage()
		os.Exit(2)
	}

	if !models.ValidUserRole(*role) {
		fmt.Printf("Invalid role: %s\n", *role)
		os.Exit(2)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:          *email,
		Password:       hash,
		FullName:       *fullName,
		Role:           models.UserRole(*role),
		SoloPercentage: *soloPercentage,
		IsActive:       true,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n", user.FullName, user.Email, user.Role)
}
