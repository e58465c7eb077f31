package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	router := setupRouter(db)

	w := doRequest(router, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	decode(t, w, &body)
	require.Len(t, body, 2)

	assert.Equal(t, map[string]interface{}{
		"id":      float64(f.restaurant.ID),
		"name":    "Karen's Pizza Shack",
		"address": "address1",
	}, body[0])
	for _, item := range body {
		assert.NotContains(t, item, "restaurant_pizzas")
	}
}

func TestGetAllRestaurantsEmpty(t *testing.T) {
	router := setupRouter(setupTestDB(t))

	w := doRequest(router, http.MethodGet, "/restaurants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	router := setupRouter(db)

	t.Run("existing restaurant includes its pizzas", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", f.restaurant.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body models.RestaurantDetail
		decode(t, w, &body)
		assert.Equal(t, f.restaurant.ID, body.ID)
		assert.Equal(t, "address1", body.Address)
		require.Len(t, body.RestaurantPizzas, 2)

		first := body.RestaurantPizzas[0]
		assert.Equal(t, float64(5), first.Price)
		assert.Equal(t, f.pizza.ID, first.PizzaID)
		assert.Equal(t, f.restaurant.ID, first.RestaurantID)
		assert.Equal(t, models.PizzaResponse{ID: f.pizza.ID, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}, first.Pizza)
	})

	t.Run("restaurant without pizzas has an empty array", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", f.emptyRestaurant.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		decode(t, w, &body)
		assert.Equal(t, []interface{}{}, body["restaurant_pizzas"])
	})

	testCases := []struct {
		name string
		path string
	}{
		{name: "unknown id", path: "/restaurants/9999"},
		{name: "zero id", path: "/restaurants/0"},
		{name: "non numeric id", path: "/restaurants/abc"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
		})
	}
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	router := setupRouter(db)
	path := fmt.Sprintf("/restaurants/%d", f.restaurant.ID)

	w := doRequest(router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var restaurantPizzas int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", f.restaurant.ID).Count(&restaurantPizzas).Error)
	assert.Zero(t, restaurantPizzas)

	var pizzas int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Equal(t, int64(2), pizzas)

	w = doRequest(router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
}

// failingRestaurantService simulates a store outage
type failingRestaurantService struct{}

var errStoreDown = errors.New("store down")

func (failingRestaurantService) GetAllRestaurants(context.Context) ([]models.Restaurant, error) {
	return nil, errStoreDown
}

func (failingRestaurantService) GetRestaurantByID(context.Context, int) (models.Restaurant, error) {
	return models.Restaurant{}, errStoreDown
}

func (failingRestaurantService) DeleteRestaurant(context.Context, int) error {
	return errStoreDown
}

func TestRestaurantControllerStoreFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewRestaurantController(failingRestaurantService{})
	router.GET("/restaurants", controller.GetAllRestaurants)
	router.GET("/restaurants/:id", controller.GetRestaurantByID)
	router.DELETE("/restaurants/:id", controller.DeleteRestaurant)

	testCases := []struct {
		method  string
		path    string
		message string
	}{
		{http.MethodGet, "/restaurants", "Failed to retrieve restaurants"},
		{http.MethodGet, "/restaurants/1", "Failed to retrieve restaurant"},
		{http.MethodDelete, "/restaurants/1", "Failed to delete restaurant"},
	}
	for _, tt := range testCases {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, tt.message), w.Body.String())
		})
	}
}
