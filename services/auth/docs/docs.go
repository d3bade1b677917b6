// Package docs registers the swagger document served at /swagger/*any.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Update the current user", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/auth/avatar": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Upload an avatar", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/providers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Linked external accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Link an external account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8001",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Auth Service API",
	Description:      "Registration, login, profiles and linked accounts for the blogpost platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
