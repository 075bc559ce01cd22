// Package docs registers the Swagger 2.0 document served at /swagger/.
// It mirrors the swag annotations on the handlers in internal/handler.
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
        "/api/valuations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "List valuations",
                "parameters": [
                    {"type": "string", "description": "Filter by kind (investment, insurance)", "name": "kind", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100, default 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ValuationsListResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/valuations/insurance": {
            "post": {
                "description": "Estimates life, disability and critical illness coverage needs and compares them with current coverage.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Calculate insurance needs",
                "parameters": [
                    {"description": "Household profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInsuranceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ValuationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/valuations/investment": {
            "post": {
                "description": "Computes a future value, or the present value needed to reach a target, and stores the result.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Calculate an investment",
                "parameters": [
                    {"description": "Investment parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInvestmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ValuationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/valuations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Get a valuation",
                "parameters": [
                    {"type": "string", "description": "Valuation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ValuationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["valuations"],
                "summary": "Delete a valuation",
                "parameters": [
                    {"type": "string", "description": "Valuation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateInsuranceRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "age": {"type": "integer", "minimum": 20, "maximum": 80},
                "annual_income": {"type": "number", "minimum": 0},
                "monthly_expenses": {"type": "number"},
                "debt": {"type": "number", "minimum": 0},
                "children_ages": {"type": "array", "maxItems": 10, "items": {"type": "integer"}},
                "spouse": {"$ref": "#/definitions/domain.SpouseInfo"},
                "assets": {"$ref": "#/definitions/domain.AssetHoldings"},
                "coverage": {"$ref": "#/definitions/domain.CurrentCoverage"}
            }
        },
        "dto.CreateInvestmentRequest": {
            "type": "object",
            "required": ["mode"],
            "properties": {
                "title": {"type": "string"},
                "mode": {"type": "string", "enum": ["future_value", "present_value"]},
                "initial_investment": {"type": "number", "minimum": 0},
                "target_amount": {"type": "number", "minimum": 0},
                "contribution": {"type": "number", "minimum": 0},
                "contribution_period": {"type": "string", "enum": ["monthly", "yearly"]},
                "period": {"type": "integer"},
                "period_unit": {"type": "string", "enum": ["years", "months"]},
                "rate": {"type": "number"},
                "rate_unit": {"type": "string", "enum": ["annual", "monthly"]},
                "compounding": {"type": "string", "enum": ["monthly", "quarterly", "semiannual", "annual"]},
                "schedule_interval": {"type": "string", "enum": ["yearly", "quarterly", "monthly"]}
            }
        },
        "domain.AssetHoldings": {
            "type": "object",
            "properties": {
                "cash": {"type": "number", "minimum": 0},
                "stocks": {"type": "number", "minimum": 0},
                "bonds": {"type": "number", "minimum": 0},
                "real_estate": {"type": "number", "minimum": 0},
                "retirement": {"type": "number", "minimum": 0},
                "other": {"type": "number", "minimum": 0}
            }
        },
        "domain.CurrentCoverage": {
            "type": "object",
            "properties": {
                "life": {"type": "number", "minimum": 0},
                "disability_monthly": {"type": "number", "minimum": 0},
                "critical_illness": {"type": "number", "minimum": 0},
                "monthly_premium": {"type": "number", "minimum": 0}
            }
        },
        "domain.SpouseInfo": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "minimum": 20, "maximum": 80},
                "retirement_age": {"type": "integer", "maximum": 90}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/dto.ErrorDetail"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"}
            }
        },
        "dto.ValuationListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "title": {"type": "string"},
                "future_value": {"type": "number"},
                "present_value": {"type": "number"},
                "total_need": {"type": "number"},
                "total_gap": {"type": "number"},
                "created_at": {"type": "string"}
            }
        },
        "dto.ValuationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "title": {"type": "string"},
                "investment": {"type": "object"},
                "insurance": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "dto.ValuationsListResponse": {
            "type": "object",
            "properties": {
                "valuations": {"type": "array", "items": {"$ref": "#/definitions/dto.ValuationListItem"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Goodwill Calculator API",
	Description:      "Investment and insurance needs calculators with stored valuations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
