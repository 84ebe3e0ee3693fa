package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"pupinn-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
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
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	// UTC keeps DATE columns round-tripping as the calendar date that was
	// written, whatever zone the server clock runs in.
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "pupinn_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

func seedUser(username, fullName, role, password string) {
	var count int64
	DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash password for %s: %v", username, err)
		return
	}

	user := models.User{
		Username: username,
		FullName: fullName,
		Password: string(hash),
		Role:     role,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("warning: failed to seed user %s: %v", username, err)
		return
	}
	log.Printf("Seeded %s account %q", role, username)
}

// SeedDatabase inserts the default staff accounts and the room grid on a
// fresh database. Existing rows are left alone, so it is safe to run on
// every startup.
func SeedDatabase() {
	seedUser("admin", "Administrator", models.RoleAdmin, envOrDefault("SEED_ADMIN_PASSWORD", "admin123"))
	seedUser("frontdesk", "Front Desk", models.RoleStaff, envOrDefault("SEED_STAFF_PASSWORD", "staff123"))
	seedUser("housekeeping", "Housekeeping", models.RoleCleaner, envOrDefault("SEED_CLEANER_PASSWORD", "cleaner123"))

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		// Floors 1-3 are singles and doubles, floor 4 holds the suites.
		rooms := make([]models.Room, 0, 14)
		for floor := 1; floor <= 3; floor++ {
			for n := 1; n <= 4; n++ {
				roomType := models.RoomTypeSingle
				if n > 2 {
					roomType = models.RoomTypeDouble
				}
				rooms = append(rooms, models.Room{
					Number: fmt.Sprintf("%d%02d", floor, n),
					Type:   roomType,
					Status: models.RoomStatusAvailable,
					Price:  models.DefaultPriceForType(roomType),
				})
			}
		}
		rooms = append(rooms,
			models.Room{Number: "401", Type: models.RoomTypeSuite, Status: models.RoomStatusAvailable, Price: models.DefaultPriceForType(models.RoomTypeSuite)},
			models.Room{Number: "402", Type: models.RoomTypeSuite, Status: models.RoomStatusAvailable, Price: models.DefaultPriceForType(models.RoomTypeSuite)},
		)
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Printf("Seeded %d rooms", len(rooms))
		}
	}

	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:      "Pupinn",
			Amenities: datatypes.JSON(`["wifi","parking","breakfast"]`),
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		}
	}
}

func ConnectDatabase() error {
	dsn, _, err := resolveMySQLDSN()
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

	if err := DB.AutoMigrate(
		&models.User{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Booking{},
		&models.GuestNote{},
	); err != nil {
		return err
	}

	SeedDatabase()

	log.Println("✅ Database connected and migrated")
	return nil
}
