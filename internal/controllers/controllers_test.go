package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
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

// setupRouter wires the controllers the same way the server does
func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	restaurants := NewRestaurantController(services.NewRestaurantService(db))
	pizzas := NewPizzaController(services.NewPizzaService(db))
	restaurantPizzas := NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/restaurants", restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurants.DeleteRestaurant)
	router.GET("/pizzas", pizzas.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)
	return router
}

type fixture struct {
	restaurant      models.Restaurant
	emptyRestaurant models.Restaurant
	pizza           models.Pizza
	secondPizza     models.Pizza
}

// seedFixture creates two restaurants and two pizzas, with both pizzas offered by the first restaurant
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		restaurant:      models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"},
		emptyRestaurant: models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"},
		pizza:           models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		secondPizza:     models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.emptyRestaurant).Error)
	require.NoError(t, db.Create(&f.pizza).Error)
	require.NoError(t, db.Create(&f.secondPizza).Error)

	for _, rp := range []models.RestaurantPizza{
		{RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID, Price: 5},
		{RestaurantID: f.restaurant.ID, PizzaID: f.secondPizza.ID, Price: 11},
	} {
		require.NoError(t, db.Omit(clause.Associations).Create(&rp).Error)
	}
	return f
}

func doRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
