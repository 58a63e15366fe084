// Package docs registers the Swagger document served under /swagger. The
// document is maintained by hand alongside the routes in internal/server.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/columns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "List the ordered workflow columns",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}}}
                }
            }
        },
        "/trials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trials"],
                "summary": "List trials",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TrialResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Trials"],
                "summary": "Create a trial",
                "parameters": [
                    {"name": "trial", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TrialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TrialResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/trials/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trials"],
                "summary": "Get a trial",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TrialResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/trials/{id}/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List the tasks of a trial in list order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update dates, progress, hierarchy and metadata of a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/trials/{id}/board": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Committed board with per-column counts",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}}
                }
            }
        },
        "/trials/{id}/board/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Rebuild the board from the persisted task list",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}}
                }
            }
        },
        "/trials/{id}/drag/begin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Start dragging a card",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "drag", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BeginDragRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Task not on board"},
                    "409": {"description": "A drag is already in progress"}
                }
            }
        },
        "/trials/{id}/drag/over": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Update the drop target and get the live preview",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "target", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DragTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/trials/{id}/drag/end": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Drop the dragged card",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "target", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DragTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Move could not be saved and was reverted"}
                }
            }
        },
        "/trials/{id}/drag/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Cancel the current drag",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/trials/{id}/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Timeline"],
                "summary": "Timeline layout of a trial",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "window start, YYYY-MM-DD", "name": "from", "in": "query"},
                    {"type": "string", "description": "window end, YYYY-MM-DD", "name": "to", "in": "query"},
                    {"type": "string", "description": "today marker date, YYYY-MM-DD", "name": "today", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/trials/{id}/timeline/nodes/{taskId}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Timeline"],
                "summary": "Expand or collapse a task's subtree",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "taskId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/trials/{id}/section": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Announce the sub-view a client is showing",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "section", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SectionRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted"}
                }
            }
        }
    },
    "definitions": {
        "handler.TrialRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handler.TrialResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.ColumnResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "position": {"type": "integer"}
            }
        },
        "handler.CreateTaskRequest": {
            "type": "object",
            "required": ["column_id", "title", "start_date", "end_date"],
            "properties": {
                "column_id": {"type": "string"},
                "title": {"type": "string"},
                "parent_id": {"type": "string"},
                "start_date": {"type": "string", "example": "2024-03-01"},
                "end_date": {"type": "string", "example": "2024-03-15"},
                "dependencies": {"type": "array", "items": {"type": "string"}},
                "progress": {"type": "number", "maximum": 1, "minimum": 0},
                "owner": {"type": "string"},
                "priority": {"type": "string"},
                "site": {"type": "string"},
                "comment_count": {"type": "integer", "minimum": 0},
                "file_count": {"type": "integer", "minimum": 0}
            }
        },
        "handler.UpdateTaskRequest": {
            "type": "object",
            "required": ["title", "start_date", "end_date"],
            "properties": {
                "title": {"type": "string"},
                "parent_id": {"type": "string"},
                "start_date": {"type": "string", "example": "2024-03-01"},
                "end_date": {"type": "string", "example": "2024-03-15"},
                "dependencies": {"type": "array", "items": {"type": "string"}},
                "progress": {"type": "number", "maximum": 1, "minimum": 0},
                "owner": {"type": "string"},
                "priority": {"type": "string"},
                "site": {"type": "string"},
                "comment_count": {"type": "integer", "minimum": 0},
                "file_count": {"type": "integer", "minimum": 0}
            }
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "trial_id": {"type": "string"},
                "column_id": {"type": "string"},
                "parent_id": {"type": "string"},
                "title": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "dependencies": {"type": "array", "items": {"type": "string"}},
                "progress": {"type": "number"},
                "position": {"type": "integer"},
                "owner": {"type": "string"},
                "priority": {"type": "string"},
                "site": {"type": "string"},
                "comment_count": {"type": "integer"},
                "file_count": {"type": "integer"}
            }
        },
        "handler.LaneResponse": {
            "type": "object",
            "properties": {
                "column_id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "count": {"type": "integer"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}
            }
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {
                "trial_id": {"type": "string"},
                "lanes": {"type": "array", "items": {"$ref": "#/definitions/handler.LaneResponse"}}
            }
        },
        "handler.BeginDragRequest": {
            "type": "object",
            "required": ["task_id"],
            "properties": {
                "task_id": {"type": "string"},
                "dx": {"type": "number"},
                "dy": {"type": "number"}
            }
        },
        "handler.DragTargetRequest": {
            "type": "object",
            "properties": {
                "target_id": {"type": "string"}
            }
        },
        "handler.SectionRequest": {
            "type": "object",
            "required": ["section"],
            "properties": {
                "section": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trial Board API",
	Description:      "Kanban board and timeline for clinical-trial tasks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
