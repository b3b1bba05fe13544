// Command seed applies the schema and loads the demo catalog so a fresh
// environment can place orders right away.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/localmart/storefront/internal/config"
	"github.com/localmart/storefront/internal/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	schemaPath := flag.String("schema", "migrations/init.sql", "path to schema file")
	withData := flag.Bool("data", true, "insert demo catalog after applying schema")
	flag.Parse()

	conf := config.New()
	db, err := postgres.New(conf.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	log.Println("schema applied")

	if !*withData {
		return
	}
	if err := seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	log.Println("demo catalog loaded")
}

type product struct {
	name      string
	price     string
	salePrice *string
	category  int64
	stock     int
}

func strPtr(s string) *string { return &s }

func seed(db *sqlx.DB) error {
	categories := []struct {
		name, description string
	}{
		{"Electronics", "Latest electronic gadgets and devices"},
		{"Clothing", "Fashion and apparel for all ages"},
		{"Home & Garden", "Home improvement and garden supplies"},
		{"Sports", "Sports equipment and accessories"},
		{"Books", "Books and educational materials"},
	}

	for _, c := range categories {
		if _, err := db.Exec(
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.name, c.description,
		); err != nil {
			return err
		}
	}

	products := []product{
		{"iPhone 15 Pro", "99999.99", strPtr("89999.99"), 1, 50},
		{"Samsung Galaxy S24", "89999.99", nil, 1, 30},
		{"Nike Air Max", "12999.99", strPtr("9999.99"), 2, 100},
		{"Adidas T-Shirt", "2999.99", nil, 2, 200},
		{"Coffee Maker", "8999.99", strPtr("6999.99"), 3, 25},
		{"Garden Hose", "3999.99", nil, 3, 75},
		{"Basketball", "4999.99", strPtr("3999.99"), 4, 60},
		{"Yoga Mat", "3499.99", nil, 4, 80},
		{"The Great Gatsby", "1299.99", strPtr("999.99"), 5, 150},
		{"Programming Guide", "2499.99", nil, 5, 100},
	}

	for _, p := range products {
		if _, err := db.Exec(
			`INSERT INTO products (name, price, sale_price, category_id, stock_quantity)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			p.name, p.price, p.salePrice, p.category, p.stock,
		); err != nil {
			return err
		}
	}

	users := []struct {
		name, email, role string
	}{
		{"Admin User", "admin@localstore.com", "admin"},
		{"John Doe", "john@example.com", "user"},
		{"Jane Smith", "jane@example.com", "user"},
	}

	for _, u := range users {
		if _, err := db.Exec(
			`INSERT INTO users (name, email, password, role) VALUES ($1, $2, 'not-a-real-hash', $3)
			 ON CONFLICT (email) DO NOTHING`,
			u.name, u.email, u.role,
		); err != nil {
			return err
		}
	}

	return nil
}
