// Package docs registers the OpenAPI spec served on /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "responses": {"200": {"description": "token and user"}, "400": {"description": "validation error"}, "409": {"description": "email already registered"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "token and user"}, "401": {"description": "invalid credentials"}, "429": {"description": "throttled"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "user with role profile"}, "401": {"description": "invalid token"}}
            }
        },
        "/applicants/profile": {
            "get": {
                "tags": ["applicants"],
                "summary": "Get own applicant profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}}
            },
            "put": {
                "tags": ["applicants"],
                "summary": "Update own applicant profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}, "422": {"description": "application frozen"}}
            }
        },
        "/applicants/upload": {
            "post": {
                "tags": ["applicants"],
                "summary": "Upload a resume or video CV",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}, "413": {"description": "file too large"}}
            }
        },
        "/applicants/submit": {
            "post": {
                "tags": ["applicants"],
                "summary": "Submit application for review",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}, "422": {"description": "invalid transition"}}
            }
        },
        "/applicants/admin/all": {
            "get": {
                "tags": ["applicants"],
                "summary": "List all applicants",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "applicants"}}
            }
        },
        "/applicants/admin/{id}/review": {
            "put": {
                "tags": ["applicants"],
                "summary": "Review an application",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}, "422": {"description": "invalid transition"}}
            }
        },
        "/applicants/admin/{id}/history": {
            "get": {
                "tags": ["applicants"],
                "summary": "Application history",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "audit events, oldest first"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Loop Services API",
	Description:      "Auth and applicant vetting backend for the Loop Services talent marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
