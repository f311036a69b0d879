package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/utils"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and seeds a small development dataset:
// a few users in every role, a vendor catalog, and orders with payments.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("APHIA - Development Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.Payment{},
		&models.Complaint{},
		&models.EmailEvent{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	ctx := context.Background()
	repos := repository.New(config.Gorm)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := seedUser(models.RoleAdmin, string(passwordHash))
	vendor := seedUser(models.RoleVendor, string(passwordHash))
	shopper := seedUser(models.RoleUser, string(passwordHash))
	log.Printf("✓ Users: admin=%s vendor=%s shopper=%s", admin.Email, vendor.Email, shopper.Email)

	category := models.Category{
		Name:        gofakeit.ProductCategory(),
		Description: gofakeit.Sentence(8),
		UserID:      vendor.ID,
	}
	must(config.Gorm.Create(&category).Error)

	var products []models.Product
	for i := 0; i < 5; i++ {
		p := models.Product{
			Name:       gofakeit.ProductName(),
			Price:      gofakeit.Price(5, 200),
			UserID:     vendor.ID,
			CategoryID: category.ID,
			Images:     []string{gofakeit.URL()},
		}
		must(config.Gorm.Create(&p).Error)
		products = append(products, p)
	}
	log.Printf("✓ Seeded %d products in category %q", len(products), category.Name)

	for i := 0; i < 3; i++ {
		order := models.Order{
			UserID:        shopper.ID,
			StreetAddress: gofakeit.Street(),
			City:          gofakeit.City(),
			State:         gofakeit.State(),
			PostalCode:    gofakeit.Zip(),
			PhoneNumber:   gofakeit.Phone(),
			Currency:      "NGN",
			OrderDate:     time.Now().AddDate(0, 0, -i),
			TxRef:         uuid.NewString(),
			OrderRef:      utils.NewOrderRef(),
		}
		var total float64
		for _, p := range pick(products, 2) {
			qty := gofakeit.Number(1, 3)
			order.Products = append(order.Products, models.OrderLineItem{
				ProductID: p.ID,
				Quantity:  qty,
				Price:     p.Price,
			})
			total += p.Price * float64(qty)
		}
		order.Amount = total
		must(repos.Orders.Create(ctx, &order))

		payment := models.Payment{
			OrderID:  order.ID,
			TxRef:    order.TxRef,
			Amount:   order.Amount,
			Currency: order.Currency,
		}
		must(repos.Payments.Create(ctx, &payment))

		settled, err := repos.Payments.ListByOrder(ctx, order.ID)
		must(err)
		log.Printf("✓ Order %s: %d payment(s) recorded", order.OrderRef, len(settled))
	}
	log.Println("✓ Seeded 3 orders with payments")

	fmt.Println()
	fmt.Println("Done. All seeded accounts use password \"password\".")
}

func seedUser(role, passwordHash string) models.User {
	user := models.User{
		Email:        gofakeit.Email(),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		PasswordHash: passwordHash,
		Role:         role,
	}
	must(config.Gorm.Create(&user).Error)
	return user
}

func pick(products []models.Product, n int) []models.Product {
	if n > len(products) {
		n = len(products)
	}
	return products[:n]
}

func must(err error) {
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
