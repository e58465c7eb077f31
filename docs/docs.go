// Package docs registers the Swagger description of the API served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Plain HTML banner",
                "produces": ["text/html"],
                "tags": ["index"],
                "summary": "Index",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the service and its database are reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/pizzas": {
            "get": {
                "description": "Get a list of all pizzas, without the restaurants offering them",
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Get all pizzas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PizzaResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/restaurant_pizzas": {
            "post": {
                "description": "Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.\nEvery rejection returns the same body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant_pizzas"],
                "summary": "Create a restaurant pizza",
                "parameters": [
                    {
                        "description": "Restaurant pizza",
                        "name": "restaurant_pizza",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.CreateRestaurantPizzaRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.RestaurantPizzaCreated"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}}
                }
            }
        },
        "/restaurants": {
            "get": {
                "description": "Get a list of all restaurants, without their pizzas",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Get all restaurants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RestaurantSummary"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/restaurants/{id}": {
            "get": {
                "description": "Get a single restaurant with its restaurant pizzas",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Get restaurant by ID",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RestaurantDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete a restaurant and every restaurant pizza that references it",
                "tags": ["restaurants"],
                "summary": "Delete a restaurant",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateRestaurantPizzaRequest": {
            "type": "object",
            "required": ["pizza_id", "price", "restaurant_id"],
            "properties": {
                "pizza_id": {"type": "integer"},
                "price": {"type": "number"},
                "restaurant_id": {"type": "integer"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.PizzaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "ingredients": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.RestaurantDetail": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "restaurant_pizzas": {"type": "array", "items": {"$ref": "#/definitions/models.RestaurantPizzaResponse"}}
            }
        },
        "models.RestaurantPizzaCreated": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "pizza": {"$ref": "#/definitions/models.PizzaResponse"},
                "pizza_id": {"type": "integer"},
                "price": {"type": "number"},
                "restaurant": {"$ref": "#/definitions/models.RestaurantSummary"},
                "restaurant_id": {"type": "integer"}
            }
        },
        "models.RestaurantPizzaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "pizza": {"$ref": "#/definitions/models.PizzaResponse"},
                "pizza_id": {"type": "integer"},
                "price": {"type": "number"},
                "restaurant_id": {"type": "integer"}
            }
        },
        "models.RestaurantSummary": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.ValidationErrorResponse": {
            "type": "object",
            "properties": {"errors": {"type": "array", "items": {"type": "string"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5555",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Restaurant Pizza API",
	Description:      "Restaurants, pizzas and the prices restaurants charge for them",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
