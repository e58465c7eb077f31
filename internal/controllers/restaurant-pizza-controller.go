package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required"`
	PizzaID      *int     `json:"pizza_id" binding:"required"`
	RestaurantID *int     `json:"restaurant_id" binding:"required"`
}

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Description Every rejection returns the same body.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		entry := log.WithError(err)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field())
			}
			entry = entry.WithField("missing_fields", fields)
		}
		entry.Debug("Rejected restaurant pizza request body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	rp, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *req.Price, *req.PizzaID, *req.RestaurantID)
	if err != nil {
		// All causes share one response body
		log.WithError(err).Debug("Rejected restaurant pizza")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}
	ctx.JSON(http.StatusCreated, rp.ToCreated())
}
