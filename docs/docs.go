// Package docs is generated by swaggo/swag from the annotations in cmd/api
// and pkg/api/handlers. Regenerate with: swag init -g cmd/api/main.go
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
        "/commands": {
            "get": {
                "description": "Returns the symbolic commands that can be sent by name",
                "produces": ["application/json"],
                "tags": ["commands"],
                "summary": "List commands",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ListCommandsResponse"}}
                }
            }
        },
        "/commands/send": {
            "post": {
                "description": "Sends a command to one or more devices (comma separated), repeating it as the command requires",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commands"],
                "summary": "Send a command",
                "parameters": [
                    {
                        "description": "Command to send",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.SendCommandRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SendCommandResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "No hub configured", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether an Insteon hub or modem is configured and reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service is healthy", "schema": {"$ref": "#/definitions/types.HealthResponse"}},
                    "503": {"description": "Service is degraded", "schema": {"$ref": "#/definitions/types.HealthResponse"}}
                }
            }
        },
        "/hub/status": {
            "get": {
                "description": "Returns the last command seen by the hub and the reply that followed it",
                "produces": ["application/json"],
                "tags": ["hub"],
                "summary": "Hub buffer status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HubStatusResponse"}},
                    "404": {"description": "No command in buffer", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "No hub configured", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "504": {"description": "Request timed out", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dispatch.CallResult": {
            "type": "object",
            "properties": {
                "cmd1": {"type": "string"},
                "cmd2": {"type": "string"},
                "device": {"type": "string"},
                "message": {"type": "string"},
                "response": {"type": "string"},
                "status": {"$ref": "#/definitions/insteon.HubStatus"},
                "success": {"type": "boolean"}
            }
        },
        "insteon.HubStatus": {
            "type": "object",
            "properties": {
                "cmd1": {"type": "string"},
                "cmd2": {"type": "string"},
                "full_response": {"type": "string"},
                "last_command": {"type": "string"},
                "last_command_cmd1": {"type": "string"},
                "last_command_cmd2": {"type": "string"},
                "source_device": {"type": "string"},
                "target_device": {"type": "string"}
            }
        },
        "types.CommandInfo": {
            "type": "object",
            "properties": {
                "cmd1": {"type": "string"},
                "cmd2": {"type": "string"},
                "expects_response": {"type": "boolean"},
                "extended": {"type": "boolean"},
                "name": {"type": "string"},
                "times": {"type": "integer"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "controller": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "types.HubStatusResponse": {
            "type": "object",
            "properties": {
                "status": {"$ref": "#/definitions/insteon.HubStatus"},
                "timestamp": {"type": "string"}
            }
        },
        "types.ListCommandsResponse": {
            "type": "object",
            "properties": {
                "commands": {"type": "array", "items": {"$ref": "#/definitions/types.CommandInfo"}},
                "count": {"type": "integer"}
            }
        },
        "types.SendCommandRequest": {
            "type": "object",
            "required": ["device"],
            "properties": {
                "cmd1": {"type": "string", "example": "11"},
                "cmd2": {"type": "string", "example": "FF"},
                "command": {"type": "string", "example": "on"},
                "device": {"type": "string", "example": "0A.34.67,1B.22.33"},
                "extended_data": {"type": "string"}
            }
        },
        "types.SendCommandResponse": {
            "type": "object",
            "properties": {
                "failed": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dispatch.CallResult"}},
                "succeeded": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Insteon Control API",
	Description:      "REST API for sending commands to Insteon devices through a hub or PowerLinc modem",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
