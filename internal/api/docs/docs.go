// Package docs registers the OpenAPI document served under /swagger. It
// mirrors the annotations on the handlers in internal/api/router.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/parse": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Parse a formula",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/router.FormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.Parsed"}},
                    "400": {"description": "Lexer, parser or depth error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/v1/table": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Enumerate every assignment over a list of variables",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/router.TableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.TableResponse"}},
                    "400": {"description": "Invalid variable names", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "413": {"description": "Too many variables", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/v1/classify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Classify a formula as Tautology, Contradiction or Contingent",
                "description": "Accepts either formula text or an encoded tree. The response carries the full truth table with a result column.",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/router.ClassifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.Report"}},
                    "400": {"description": "Invalid formula", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "413": {"description": "Too many variables", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/v1/evaluate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Evaluate a formula under one assignment",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/router.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.EvaluateResponse"}},
                    "400": {"description": "Invalid formula or tree", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "422": {"description": "A variable reached during evaluation has no value", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/v1/sat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Decide satisfiability and validity with a SAT solver",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/router.FormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.SatReport"}},
                    "400": {"description": "Invalid formula", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string", "enum": ["validation", "lex", "parse", "depth", "undefined_variable", "too_many_variables"]}
            }
        },
        "ast.Node": {
            "type": "object",
            "description": "Externally tagged node, e.g. {\"And\":[{\"Variable\":\"p1\"},{\"Not\":{\"Variable\":\"p2\"}}]}",
            "additionalProperties": true
        },
        "analysis.Parsed": {
            "type": "object",
            "properties": {
                "formula": {"type": "string"},
                "ast": {"$ref": "#/definitions/ast.Node"},
                "variables": {"type": "array", "items": {"type": "string"}},
                "tree": {"type": "string"}
            }
        },
        "analysis.Row": {
            "type": "object",
            "properties": {
                "assignment": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "result": {"type": "boolean"}
            }
        },
        "analysis.Report": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "formula": {"type": "string"},
                "ast": {"$ref": "#/definitions/ast.Node"},
                "variables": {"type": "array", "items": {"type": "string"}},
                "tree": {"type": "string"},
                "classification": {"type": "string", "enum": ["Tautology", "Contradiction", "Contingent"]},
                "true_rows": {"type": "integer"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/analysis.Row"}}
            }
        },
        "router.FormulaRequest": {
            "type": "object",
            "required": ["formula"],
            "properties": {
                "formula": {"type": "string", "example": "(p1 | p2) & p3"}
            }
        },
        "router.ClassifyRequest": {
            "type": "object",
            "properties": {
                "formula": {"type": "string", "example": "(p1 & p2) -> (p1 | p2)"},
                "ast": {"$ref": "#/definitions/ast.Node"}
            }
        },
        "router.TableRequest": {
            "type": "object",
            "required": ["variables"],
            "properties": {
                "variables": {"type": "array", "items": {"type": "string"}, "example": ["p1", "p2"]}
            }
        },
        "router.TableResponse": {
            "type": "object",
            "properties": {
                "variables": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {"type": "boolean"}}}
            }
        },
        "router.EvaluateRequest": {
            "type": "object",
            "required": ["assignment"],
            "properties": {
                "formula": {"type": "string", "example": "(p1 | p2) -> p3"},
                "ast": {"$ref": "#/definitions/ast.Node"},
                "assignment": {"type": "object", "additionalProperties": {"type": "boolean"}}
            }
        },
        "router.EvaluateResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "boolean"}
            }
        },
        "analysis.SatReport": {
            "type": "object",
            "properties": {
                "variables": {"type": "array", "items": {"type": "string"}},
                "satisfiable": {"type": "boolean"},
                "valid": {"type": "boolean"},
                "classification": {"type": "string", "enum": ["Tautology", "Contradiction", "Contingent"]},
                "witness": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "counterexample": {"type": "object", "additionalProperties": {"type": "boolean"}}
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
	Title:            "Propcheck API",
	Description:      "Parses propositional formulas, builds truth tables and classifies formulas as tautologies, contradictions or contingent.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
