package main

import (
	"log"
	"os"

	"streampoint-be/internal/model"
	"streampoint-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding StreamPoint catalog...")
	seedCatalog(db)

	color.Cyan("Seeding staff account...")
	seedStaff(db)

	color.Cyan("Seeding reward configuration...")
	seedRewardConfig(db)

	color.Cyan("Seeding notification types...")
	seedNotificationTypes(db)

	color.Green("✅ Seeding completed!")
}

func seedCatalog(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Video", Description: "Películas y series en streaming", Icon: "film"},
		{Name: "Música", Description: "Audio y podcasts", Icon: "music"},
		{Name: "Gaming", Description: "Juegos en la nube y catálogos", Icon: "gamepad"},
	}

	catIds := map[string]model.Category{}
	for _, c := range categories {
		var existing model.Category
		if err := db.Where("name = ?", c.Name).FirstOrCreate(&existing, c).Error; err != nil {
			color.Red("Error seeding category %s: %v", c.Name, err)
			continue
		}
		catIds[existing.Name] = existing
	}

	type planSpec struct {
		Name                string
		Price               float64
		Duration            string
		Features            string
		FirstPurchasePoints int
		RenewalPoints       int
	}
	type serviceSpec struct {
		Category    string
		Name        string
		Description string
		LogoURL     string
		SiteURL     string
		Plans       []planSpec
	}

	services := []serviceSpec{
		{
			Category:    "Video",
			Name:        "Netflix",
			Description: "Series, películas y documentales",
			LogoURL:     "https://cdn.streampoint.app/logos/netflix.png",
			SiteURL:     "https://www.netflix.com",
			Plans: []planSpec{
				{"Básico", 26900, "mensual", `["1 pantalla", "HD"]`, 100, 50},
				{"Estándar", 38900, "mensual", `["2 pantallas", "Full HD"]`, 150, 75},
				{"Premium", 54900, "mensual", `["4 pantallas", "4K Ultra HD"]`, 200, 100},
			},
		},
		{
			Category:    "Video",
			Name:        "Disney+",
			Description: "Disney, Pixar, Marvel y Star Wars",
			LogoURL:     "https://cdn.streampoint.app/logos/disney.png",
			SiteURL:     "https://www.disneyplus.com",
			Plans: []planSpec{
				{"Estándar", 27900, "mensual", `["2 pantallas", "Full HD"]`, 120, 60},
				{"Premium", 41900, "mensual", `["4 pantallas", "4K", "Descargas"]`, 180, 90},
			},
		},
		{
			Category:    "Música",
			Name:        "Spotify",
			Description: "Música y podcasts sin anuncios",
			LogoURL:     "https://cdn.streampoint.app/logos/spotify.png",
			SiteURL:     "https://www.spotify.com",
			Plans: []planSpec{
				{"Individual", 16900, "mensual", `["1 cuenta", "Sin anuncios"]`, 80, 40},
				{"Familiar", 26900, "mensual", `["6 cuentas", "Control parental"]`, 140, 70},
			},
		},
		{
			Category:    "Gaming",
			Name:        "Xbox Game Pass",
			Description: "Catálogo de juegos en la nube",
			LogoURL:     "https://cdn.streampoint.app/logos/gamepass.png",
			SiteURL:     "https://www.xbox.com/game-pass",
			Plans: []planSpec{
				{"Ultimate", 49900, "mensual", `["Consola y PC", "Juego en la nube"]`, 200, 100},
			},
		},
	}

	for _, s := range services {
		cat, ok := catIds[s.Category]
		if !ok {
			continue
		}

		svc := model.StreamingService{
			CategoryId:  cat.Id,
			Name:        s.Name,
			Description: s.Description,
			LogoURL:     s.LogoURL,
			SiteURL:     s.SiteURL,
			Active:      true,
		}
		var existing model.StreamingService
		if err := db.Where("name = ?", svc.Name).FirstOrCreate(&existing, svc).Error; err != nil {
			color.Red("Error seeding service %s: %v", s.Name, err)
			continue
		}

		for _, p := range s.Plans {
			plan := model.Plan{
				ServiceId:           existing.Id,
				Name:                p.Name,
				Price:               p.Price,
				Duration:            p.Duration,
				Features:            datatypes.JSON([]byte(p.Features)),
				FirstPurchasePoints: p.FirstPurchasePoints,
				RenewalPoints:       p.RenewalPoints,
				Active:              true,
			}
			var existingPlan model.Plan
			err := db.Where("service_id = ? AND name = ?", existing.Id, p.Name).
				FirstOrCreate(&existingPlan, plan).Error
			if err != nil {
				color.Red("Error seeding plan %s/%s: %v", s.Name, p.Name, err)
			}
		}
		color.Green("Seeded service: %s (%d plans)", s.Name, len(s.Plans))
	}
}

func seedStaff(db *gorm.DB) {
	email := os.Getenv("SEED_STAFF_EMAIL")
	if email == "" {
		email = "staff@streampoint.app"
	}
	password := os.Getenv("SEED_STAFF_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_STAFF_PASSWORD not set, using default (change it!)")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Staff account %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error hashing staff password: %v", err)
		return
	}

	staff := model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "StreamPoint Staff",
		Role:         "staff",
		Status:       "active",
	}
	if err := db.Create(&staff).Error; err != nil {
		color.Red("Error creating staff account: %v", err)
		return
	}
	color.Green("Created staff account: %s", email)
}

func seedRewardConfig(db *gorm.DB) {
	var existing model.RewardConfig
	if err := db.Where("active = ?", true).First(&existing).Error; err == nil {
		color.Yellow("Active reward config already exists, skipping")
		return
	}

	cfg := model.RewardConfig{
		PointsPerPeso:   10,
		MinRedeemPoints: 500,
		Active:          true,
	}
	if err := db.Create(&cfg).Error; err != nil {
		color.Red("Error creating reward config: %v", err)
		return
	}
	color.Green("Created reward config (10 puntos por peso, canje mínimo 500)")
}
