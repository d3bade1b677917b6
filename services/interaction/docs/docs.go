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
        "/likes": {
            "get": {"tags": ["likes"], "summary": "List likes", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["likes"], "summary": "Like a post", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/likes/toggle": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["likes"], "summary": "Toggle a like", "responses": {"200": {"description": "Like removed"}, "201": {"description": "Like created"}}}
        },
        "/likes/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["likes"], "summary": "Remove a like", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/likes/stats/{post_id}": {
            "get": {"tags": ["likes"], "summary": "Like statistics for a post", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8004",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Interaction Service API",
	Description:      "Likes and like statistics for the blogpost platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
