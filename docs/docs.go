// Package docs registers the OpenAPI document served under /swagger.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/sign-up/{role}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"enum": ["tourist", "tour-guide", "advertiser", "seller"], "type": "string", "description": "Account role", "name": "role", "in": "path", "required": true},
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.Account"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/accounts/{role}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create staff account",
                "parameters": [
                    {"enum": ["admin", "tourism-governor"], "type": "string", "description": "Staff role", "name": "role", "in": "path", "required": true},
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.staffRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.Account"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/search-activities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search activities",
                "parameters": [{"type": "string", "description": "Search term", "name": "searchBy", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Activity"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/search-itineraries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search itineraries",
                "parameters": [{"type": "string", "description": "Search term", "name": "searchBy", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Itinerary"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/activities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List activities",
                "parameters": [{"type": "string", "description": "Owning advertiser id", "name": "advertiserId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Activity"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create activity",
                "parameters": [{"description": "Activity", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createActivityRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Activity"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/itineraries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List itineraries",
                "parameters": [{"type": "string", "description": "Owning tour guide id", "name": "tourGuideId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Itinerary"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create itinerary",
                "parameters": [{"description": "Itinerary", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createItineraryRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Itinerary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/advertisers/me/activities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "My activities",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Activity"}}}}
            }
        },
        "/tour-guides/me/itineraries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "My itineraries",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Itinerary"}}}}
            }
        },
        "/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List tags",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create tag",
                "parameters": [{"description": "Tag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createTagRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Tag"}}}
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create category",
                "parameters": [{"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Category"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"email": {"type": "string"}, "username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "role": {"type": "string"}}
        },
        "handler.signupRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "mobile_number": {"type": "string"},
                "nationality": {"type": "string"},
                "dob": {"type": "string", "example": "1995-04-12"},
                "job": {"type": "string"},
                "years_of_experience": {"type": "integer"},
                "previous_work": {"type": "string"},
                "website": {"type": "string"},
                "hotline": {"type": "string"},
                "company_profile": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handler.staffRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.createActivityRequest": {
            "type": "object",
            "required": ["name", "location", "date"],
            "properties": {
                "name": {"type": "string"},
                "location": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "price": {"type": "number"},
                "special_discounts": {"type": "string"},
                "booking_open": {"type": "boolean"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.createItineraryRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "language": {"type": "string"},
                "price": {"type": "number"},
                "available_dates": {"type": "array", "items": {"type": "string", "format": "date-time"}},
                "activities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.createTagRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {"type": {"type": "string"}, "period": {"type": "string"}}
        },
        "handler.createCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "domain.Account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "profile": {"type": "object"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Tag": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "type": {"type": "string"}, "period": {"type": "string"}}
        },
        "domain.Category": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "domain.Owner": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "username": {"type": "string"}, "name": {"type": "string"}}
        },
        "domain.Activity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "date": {"type": "string"},
                "price": {"type": "number"},
                "special_discounts": {"type": "string"},
                "booking_open": {"type": "boolean"},
                "advertiser": {"$ref": "#/definitions/domain.Owner"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}},
                "created_at": {"type": "string"}
            }
        },
        "domain.Itinerary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "language": {"type": "string"},
                "price": {"type": "number"},
                "available_dates": {"type": "array", "items": {"type": "string"}},
                "tour_guide": {"$ref": "#/definitions/domain.Owner"},
                "activities": {"type": "array", "items": {"$ref": "#/definitions/domain.Activity"}},
                "created_at": {"type": "string"}
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
	Title:            "Tourism Platform API",
	Description:      "Multi-role authentication and relevance search over activities and itineraries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
