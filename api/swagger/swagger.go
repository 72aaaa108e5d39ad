package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Placement Success API",
        "description": "Back office for batches, students, scores and placement tracking",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Batches", "description": "Training batch management"},
        {"name": "Students", "description": "Student roster and bulk import"},
        {"name": "Scores", "description": "Milestone scores and EPIC status"},
        {"name": "Opportunities", "description": "Placement drives and assignments"},
        {"name": "TeamLeaders", "description": "Placement team leader accounts"},
        {"name": "Users", "description": "Back-office user accounts"},
        {"name": "Spocs", "description": "Company contact points"},
        {"name": "Lookups", "description": "Domain, EPIC and status lookup tables"},
        {"name": "Dashboards", "description": "Owner and SME aggregation views"},
        {"name": "Reports", "description": "Owner reports and exports"},
        {"name": "Trainers", "description": "Trainer roster and batch assignments"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/batches": {
            "get": {
                "tags": ["Batches"],
                "summary": "List batches",
                "parameters": [
                    {"name": "batchName", "in": "query", "type": "string"},
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Batches"],
                "summary": "Create batch",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/batches/{id}": {
            "get": {
                "tags": ["Batches"],
                "summary": "Get batch with students",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Batches"],
                "summary": "Update batch",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Batches"],
                "summary": "Delete batch",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/batches/name/{batchName}": {
            "get": {
                "tags": ["Batches"],
                "summary": "Get batch with students",
                "parameters": [{"name": "batchName", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/batches/{bookingId}": {
            "post": {
                "tags": ["Batches"],
                "summary": "Move a student to another batch",
                "parameters": [
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Student or target batch not found"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Filter students by batch id or placement",
                "parameters": [
                    {"name": "batchId", "in": "query", "type": "string"},
                    {"name": "placement", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Neither batchId nor placement given"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Duplicate booking id or invalid payload"}
                }
            }
        },
        "/students/{bookingId}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [{"name": "bookingId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [{"name": "bookingId", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/students/bulkAdd/{batchName}": {
            "post": {
                "tags": ["Students"],
                "summary": "Bulk import students",
                "parameters": [
                    {"name": "batchName", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/students/allStudents": {
            "get": {
                "tags": ["Students"],
                "summary": "List every student",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/filter": {
            "get": {
                "tags": ["Students"],
                "summary": "Filter students by batch name, status or placement",
                "parameters": [
                    {"name": "batchName", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "placement", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "No filter given"}
                }
            }
        },
        "/students/placed": {
            "get": {
                "tags": ["Students"],
                "summary": "List placed students",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/stats": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Per-domain batch and placement counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/graphs": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Monthly placement series",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/scores": {
            "get": {
                "tags": ["Scores"],
                "summary": "List scores",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Scores"],
                "summary": "Submit scores (insert or overwrite)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/scores/{bookingId}": {
            "get": {
                "tags": ["Scores"],
                "summary": "Get score card",
                "parameters": [{"name": "bookingId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Scores"],
                "summary": "Update existing score card",
                "parameters": [
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/opportunities": {
            "get": {
                "tags": ["Opportunities"],
                "summary": "List opportunities",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Opportunities"],
                "summary": "Create opportunity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/opportunities/{id}/students": {
            "post": {
                "tags": ["Opportunities"],
                "summary": "Add assigned students",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Opportunities"],
                "summary": "Replace assigned students",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/teamLeader": {
            "get": {
                "tags": ["TeamLeaders"],
                "summary": "List team leaders",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["TeamLeaders"],
                "summary": "Create team leader",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/owner/dashboard/counts": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Owner headline counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/owner/dashboard/graphs": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Owner per-domain graphs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sme/dashboard/{domain}": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "SME dashboard",
                "parameters": [{"name": "domain", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown domain"}}
            }
        },
        "/owner/reports/placements/{domain}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Placement report, optionally exported",
                "parameters": [
                    {"name": "domain", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sme/trainers/assignments/{batchNo}": {
            "get": {
                "tags": ["Trainers"],
                "summary": "List batch trainer assignments",
                "parameters": [{"name": "batchNo", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Trainers"],
                "summary": "Assign trainer to batch",
                "parameters": [
                    {"name": "batchNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
