package config

import (
	"log"
	"os"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file if one exists. Missing files are fine; deployed
// environments set real env vars instead.
func LoadEnv() {
	_ = godotenv.Load()
}

// TaxRate returns the billing tax rate, default 5%.
func TaxRate() decimal.Decimal {
	raw := getEnv("TAX_RATE", "0.05")
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Invalid TAX_RATE %q, falling back to 0.05", raw)
		return decimal.NewFromFloat(0.05)
	}
	return rate
}

// QRBaseURL is the digital-menu URL prefix embedded in table QR payloads.
func QRBaseURL() string {
	return getEnv("QR_BASE_URL", "https://menu.krishnakitchen.local")
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant_pos.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs the schema auto-migration. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Expense{},
		&models.Staff{},
		&models.StaffAttendance{},
		&models.QRTable{},
	)
}
