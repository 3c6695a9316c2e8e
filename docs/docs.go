// Package docs registers the OpenAPI document served under /swagger.
// It follows the layout swag init emits and is kept in step with the controller annotations by hand.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/api/auth/register": {
            "post": {"tags": ["auth"], "summary": "Create a customer account", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/auth/logout": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Log out", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/oauth/token": {
            "post": {"tags": ["OAuth2"], "summary": "Token Endpoint", "consumes": ["application/x-www-form-urlencoded"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Grant type: client_credentials", "name": "grant_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "formData", "required": true},
                    {"type": "string", "description": "Client Secret", "name": "client_secret", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/clients": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "List OAuth2 clients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "Create OAuth2 client", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateClientRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/clients/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "Delete OAuth2 client",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/menu": {
            "get": {"tags": ["menu"], "summary": "List menu items",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "dietary", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "boolean", "name": "featured", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["menu"], "summary": "Add a menu item", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.MenuItemRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/menu/featured": {
            "get": {"tags": ["menu"], "summary": "Featured menu items", "responses": {"200": {"description": "OK"}}}
        },
        "/api/menu/{id}": {
            "get": {"tags": ["menu"], "summary": "Get a menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["menu"], "summary": "Replace a menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.MenuItemRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["menu"], "summary": "Delete a menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/menu/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["menu"], "summary": "Change menu item availability", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StatusRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/orders": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["orders"], "summary": "Place an order", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateOrderRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/orders/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Get an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Update an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateOrderRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Delete an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/orders/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Move an order through its lifecycle", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StatusRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/reservations": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "List reservations", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reservations"], "summary": "Book a table", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateReservationRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/reservations/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "Delete a reservation", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/reservations/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "Confirm or cancel a reservation", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StatusRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/available-tables": {
            "get": {"tags": ["reservations"], "summary": "Free tables at a time slot",
                "parameters": [{"type": "string", "name": "date", "in": "query", "required": true}, {"type": "string", "name": "time", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/staff": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "List staff", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "Add a staff member", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StaffRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/staff/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "Get a staff member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "Replace a staff member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StaffRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "Remove a staff member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/staff/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["staff"], "summary": "Activate or deactivate a staff member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.StatusRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "controllers.CreateClientRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "domain": {"type": "string"},
                "scopes": {"type": "string"}
            }
        },
        "controllers.CreateOrderRequest": {
            "type": "object",
            "required": ["address", "customerName", "email", "items", "paymentMethod", "phone", "type"],
            "properties": {
                "customerName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/controllers.OrderItemRequest"}},
                "total": {"type": "number", "minimum": 0},
                "specialInstructions": {"type": "string"},
                "type": {"type": "string", "enum": ["delivery", "takeaway", "dine-in"]},
                "table": {"type": "integer", "minimum": 1},
                "paymentMethod": {"type": "string", "enum": ["card", "cash", "paypal"]}
            }
        },
        "controllers.CreateReservationRequest": {
            "type": "object",
            "required": ["customerName", "date", "email", "guests", "phone", "tableNumber", "time"],
            "properties": {
                "customerName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "date": {"type": "string", "example": "2025-06-01"},
                "time": {"type": "string", "example": "19:00"},
                "guests": {"type": "integer", "minimum": 1},
                "tableNumber": {"type": "integer", "minimum": 1},
                "specialRequests": {"type": "string"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "controllers.MenuItemRequest": {
            "type": "object",
            "required": ["category", "description", "image", "name", "price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"},
                "image": {"type": "string"},
                "dietary": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"},
                "status": {"type": "string"}
            }
        },
        "controllers.OrderItemRequest": {
            "type": "object",
            "required": ["name", "quantity"],
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "controllers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "controllers.StaffRequest": {
            "type": "object",
            "required": ["email", "name", "phone", "position", "salary", "startDate"],
            "properties": {
                "name": {"type": "string"},
                "position": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "salary": {"type": "number", "minimum": 0},
                "startDate": {"type": "string", "example": "2024-02-01"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "avatar": {"type": "string"}
            }
        },
        "controllers.StatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "controllers.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "customerName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/controllers.OrderItemRequest"}},
                "total": {"type": "number", "minimum": 0},
                "specialInstructions": {"type": "string"},
                "type": {"type": "string"},
                "table": {"type": "integer", "minimum": 1},
                "paymentMethod": {"type": "string"},
                "paymentStatus": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tablekeeper Restaurant API",
	Description:      "Menu, orders, reservations and staff for a single restaurant",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
