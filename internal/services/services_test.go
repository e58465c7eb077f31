package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createRestaurant(t *testing.T, db *gorm.DB, name, address string) models.Restaurant {
	restaurant := models.Restaurant{Name: name, Address: address}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func createPizza(t *testing.T, db *gorm.DB, name, ingredients string) models.Pizza {
	pizza := models.Pizza{Name: name, Ingredients: ingredients}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

func createRestaurantPizza(t *testing.T, db *gorm.DB, restaurantID, pizzaID int, price float64) models.RestaurantPizza {
	rp := models.RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID, Price: price}
	require.NoError(t, db.Omit(clause.Associations).Create(&rp).Error)
	return rp
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}
