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
        "/comments": {
            "get": {"tags": ["comments"], "summary": "List comments", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Create a comment", "responses": {"201": {"description": "Created"}}}
        },
        "/comments/mine": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "List my comments", "responses": {"200": {"description": "OK"}}}
        },
        "/comments/pending": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "List comments awaiting approval", "responses": {"200": {"description": "OK"}}}
        },
        "/comments/{id}": {
            "get": {"tags": ["comments"], "summary": "Get a comment", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Edit a comment", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Delete a comment", "responses": {"204": {"description": "No Content"}}}
        },
        "/comments/{id}/reply": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Reply to a comment", "responses": {"201": {"description": "Created"}}}
        },
        "/comments/{id}/approve": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Approve a comment", "responses": {"200": {"description": "OK"}}}
        },
        "/comments/{id}/disapprove": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Disapprove a comment", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/comments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List all comments (admin)", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8003",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Comment Service API",
	Description:      "Comments, replies and moderation for the blogpost platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
