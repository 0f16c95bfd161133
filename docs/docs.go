// Package docs registers the OpenAPI document served by the Swagger UI
// route. Regenerate with `swag init -g cmd/server/main.go` after
// changing handler annotations.
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
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate and receive a session token",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Revoke the presented session token",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/entries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List curated API entries",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List catalog categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/github/endpoints": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List GitHub endpoint groups",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/generate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate integration code for a catalog API",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/deploy": {
            "post": {
                "produces": ["application/json"],
                "tags": ["deploy"],
                "summary": "Run the simulated deployment pipeline",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/deployments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["deploy"],
                "summary": "List the caller's deployments",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/deployments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["deploy"],
                "summary": "Fetch one deployment record",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["deploy"],
                "summary": "Delete a deployment record",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reputation"],
                "summary": "List the caller's activity log, newest first",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/reputation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reputation"],
                "summary": "Fetch the caller's reputation view",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/reputation/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reputation"],
                "summary": "Rank users by score",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "go-autoapi-backend",
	Description:      "Token-authenticated backend for the curated API catalog, code generation, simulated deployments, and the reputation ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
