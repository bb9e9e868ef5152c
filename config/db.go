package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"rental-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "rental_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase ensures the reference data behind search facets exists.
func SeedDatabase() {
	var categoryCount int64
	DB.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []models.Category{
			{Name: "Lakefront"},
			{Name: "Mountain view"},
			{Name: "City center"},
			{Name: "Countryside"},
		}
		if err := DB.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed categories: %v", err)
		} else {
			log.Println("Categories seeded")
		}
	}

	var typeCount int64
	DB.Model(&models.PropertyType{}).Count(&typeCount)
	if typeCount == 0 {
		types := []models.PropertyType{
			{Name: "House"},
			{Name: "Cottage"},
			{Name: "Apartment"},
			{Name: "Guesthouse"},
		}
		if err := DB.Create(&types).Error; err != nil {
			log.Printf("warning: failed to seed types: %v", err)
		} else {
			log.Println("Property types seeded")
		}
	}

	var convenienceCount int64
	DB.Model(&models.Convenience{}).Count(&convenienceCount)
	if convenienceCount == 0 {
		conveniences := []models.Convenience{
			{Name: "Wi-Fi"},
			{Name: "Parking"},
			{Name: "Pool"},
			{Name: "Sauna"},
			{Name: "Air conditioning"},
		}
		if err := DB.Create(&conveniences).Error; err != nil {
			log.Printf("warning: failed to seed conveniences: %v", err)
		} else {
			log.Println("Conveniences seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Convenience{},
		&models.PropertyType{},
		&models.Property{},
		&models.Booking{},
		&models.Image{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
