package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

func main() {
	// Parse command line flags
	driver := flag.String("driver", "sqlite", "Database driver (sqlite or postgres)")
	dsn := flag.String("dsn", "app.db", "Database file (sqlite) or connection URL (postgres)")
	reset := flag.Bool("reset", false, "Delete all restaurant pizzas, restaurants and pizzas before seeding")
	flag.Parse()

	cfg := database.DatabaseConfig{Driver: *driver, URL: *dsn}
	db, err := database.InitDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		fmt.Println("✓ Cleared restaurants, pizzas and restaurant pizzas")
	}

	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	var restaurants, pizzas, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)

	fmt.Println("✓ Database ready!")
	fmt.Println("")
	fmt.Printf("Restaurants:       %d\n", restaurants)
	fmt.Printf("Pizzas:            %d\n", pizzas)
	fmt.Printf("Restaurant pizzas: %d\n", restaurantPizzas)
}
