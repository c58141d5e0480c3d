// Package docs registers the OpenAPI document of the brayton HTTP API.
//
// Regenerate with `swag init -g internal/server/server.go` after changing the
// handler annotations.
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
        "/cycles": {
            "post": {
                "description": "Solve an ideal-gas Brayton cycle. Inputs are in form units (kPa, K, MW); regen may be a number, \"none\" or null.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cycles"],
                "summary": "Solve a cycle",
                "parameters": [
                    {
                        "description": "Cycle inputs",
                        "name": "cycle",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.CycleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Solved cycle", "schema": {"$ref": "#/definitions/cycle.Result"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/diagrams/{kind}": {
            "post": {
                "description": "Solve a cycle and render its P-v or T-s diagram as SVG.",
                "consumes": ["application/json"],
                "produces": ["image/svg+xml"],
                "tags": ["diagrams"],
                "summary": "Render a cycle diagram",
                "parameters": [
                    {
                        "enum": ["pv", "ts"],
                        "type": "string",
                        "description": "Diagram kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cycle inputs",
                        "name": "cycle",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.CycleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "SVG document", "schema": {"type": "string"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "404": {"description": "Unknown diagram kind", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/gas": {
            "get": {
                "description": "Gas properties used when a request does not override them.",
                "produces": ["application/json"],
                "tags": ["gas"],
                "summary": "Default gas properties",
                "responses": {
                    "200": {"description": "Gas properties", "schema": {"$ref": "#/definitions/cycle.Gas"}}
                }
            }
        }
    },
    "definitions": {
        "cycle.Gas": {
            "type": "object",
            "properties": {
                "cp": {"type": "number"},
                "cv": {"type": "number"},
                "k": {"type": "number"},
                "r": {"type": "number"}
            }
        },
        "cycle.Point": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "pressure": {"type": "number"},
                "temperature": {"type": "number"},
                "specific_volume": {"type": "number"},
                "specific_entropy": {"type": "number"}
            }
        },
        "cycle.Result": {
            "type": "object",
            "properties": {
                "points": {"type": "array", "items": {"$ref": "#/definitions/cycle.Point"}},
                "compressor_work": {"type": "number"},
                "turbine_work": {"type": "number"},
                "net_work": {"type": "number"},
                "heat_in": {"type": "number"},
                "mass_flow": {"type": "number"},
                "efficiency": {"type": "number"}
            }
        },
        "server.CycleRequest": {
            "type": "object",
            "properties": {
                "p1_kpa": {"type": "number", "example": 100},
                "t1_k": {"type": "number", "example": 288},
                "pressure_ratio": {"type": "number", "example": 8},
                "power_mw": {"type": "number", "example": 50},
                "tmax_k": {"type": "number", "example": 1400},
                "regen": {"type": "string", "example": "none"},
                "gas": {"$ref": "#/definitions/server.GasRequest"}
            }
        },
        "server.GasRequest": {
            "type": "object",
            "properties": {
                "cp": {"type": "number", "example": 1.005},
                "cv": {"type": "number", "example": 0.718}
            }
        },
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "brayton API",
	Description:      "Stateless ideal-gas Brayton cycle solver.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
