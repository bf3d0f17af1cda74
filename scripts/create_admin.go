// scripts/create_admin.go
//
// Users have no create endpoint; this is the external provisioner.
// Usage: go run ./scripts [username] [password]
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/config"
	"github.com/Tharushi-Umesha/school-management-system/database"
	"github.com/Tharushi-Umesha/school-management-system/models"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	username := "admin"
	password := "admin123"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("user already exists with username:", username)
		os.Exit(0)
	}

	u := models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert user: %v", err)
	}

	fmt.Println("user created successfully")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(plain, remember to change later!)")
}
