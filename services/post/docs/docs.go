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
        "/posts": {
            "get": {"tags": ["posts"], "summary": "List posts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Create a post", "responses": {"201": {"description": "Created"}}}
        },
        "/posts/mine": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "List my posts", "responses": {"200": {"description": "OK"}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Update a post", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Delete a post", "responses": {"204": {"description": "No Content"}}}
        },
        "/posts/{id}/publish": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Publish a post", "responses": {"200": {"description": "OK"}}}
        },
        "/posts/{id}/unpublish": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Unpublish a post", "responses": {"200": {"description": "OK"}}}
        },
        "/posts/{id}/image": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Upload a cover image", "responses": {"200": {"description": "OK"}}}
        },
        "/tags": {
            "get": {"tags": ["taxonomy"], "summary": "List tags", "responses": {"200": {"description": "OK"}}}
        },
        "/categories": {
            "get": {"tags": ["taxonomy"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/posts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List all posts (admin)", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8002",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Post Service API",
	Description:      "Posts, tags and categories for the blogpost platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
