// Package docs holds the generated Swagger specification.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/book": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Create a booking",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failure, unknown route, or missing confirmation"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "List bookings",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/cancel": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Cancel a booking",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Already cancelled"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/conversation": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Hold one conversation turn",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Get a price quote",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failure or unknown route"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/routes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "List available routes",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/track/{booking_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Track a booking",
                "parameters": [
                    {
                        "type": "string",
                        "name": "booking_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Air Cargo Assistant API",
	Description:      "Conversational air cargo booking: quotes, bookings, tracking, and cancellation with an LLM front-end over a deterministic engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
