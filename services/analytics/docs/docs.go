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
        "/analytics/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Author statistics", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/analytics/posts/{post_id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Post statistics", "parameters": [{"type": "string", "name": "post_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8006",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Analytics Service API",
	Description:      "Post and engagement statistics for authors on the blogpost platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
