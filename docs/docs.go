// Package docs registers the Swagger documentation for the Litoral Shop API.
// Regenerate with `swag init` after changing handler annotations.
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
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Log in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/products": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get the product catalog",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/categories": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get catalog categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/stores": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get pickup store locations",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/neighborhoods": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get delivery neighborhoods and fees",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/carts": {
            "post": {
                "tags": ["Cart"],
                "summary": "Start a new cart",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/carts/{id}": {
            "get": {
                "tags": ["Cart"],
                "summary": "Get a cart",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "Empty a cart",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/carts/{id}/items": {
            "post": {
                "tags": ["Cart"],
                "summary": "Add a product to a cart",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["Cart"],
                "summary": "Adjust a cart line quantity",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders": {
            "post": {
                "tags": ["Orders"],
                "summary": "Submit an order",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "get": {
                "tags": ["Production"],
                "summary": "Get all orders",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "tags": ["Production"],
                "summary": "Update order status",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{id}/receipt": {
            "get": {
                "tags": ["Production"],
                "summary": "Get the printable receipt of an order",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "tags": ["Admin - Dashboard"],
                "summary": "Get admin dashboard stats",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/neighborhoods": {
            "get": {
                "tags": ["Admin - Neighborhoods"],
                "summary": "Get the neighborhood fee list",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Admin - Neighborhoods"],
                "summary": "Add a neighborhood fee entry",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["Admin - Users"],
                "summary": "Get the user roster",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Admin - Users"],
                "summary": "Add a roster account",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin/users/{id}": {
            "delete": {
                "tags": ["Admin - Users"],
                "summary": "Remove a roster account",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Litoral Shop API",
	Description:      "Food-ordering storefront, production panel and back-office for CH Litoral.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
