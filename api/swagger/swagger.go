package swagger

import "github.com/swaggo/swag"

// docTemplate is regenerated by `swag init -g cmd/hr-api/main.go` when
// handler annotations change.
const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "HR Disciplinary API", "description": "Disciplinary cases, sanctions, appeals and employee exit workflows", "version": "1.0.0"},
    "basePath": "/api/v1",
    "schemes": ["http"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [
        {"name": "Offenses"},
        {"name": "Cases"},
        {"name": "Case workflow"},
        {"name": "Actions"},
        {"name": "Appeals"},
        {"name": "Investigations"},
        {"name": "Letters"},
        {"name": "Documents"},
        {"name": "Resignations"},
        {"name": "Exit interviews"}
    ],
    "paths": {
        "/offenses": {
            "get": {"tags": ["Offenses"], "summary": "List offense classifications", "parameters": [{"name": "severity", "in": "query", "type": "string", "description": "Severity"}, {"name": "activeOnly", "in": "query", "type": "boolean", "description": "Active only"}, {"name": "search", "in": "query", "type": "string", "description": "Name search"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Offenses"], "summary": "Create an offense classification", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Offense"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/offenses/{id}": {
            "get": {"tags": ["Offenses"], "summary": "Get an offense classification", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Offense ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Offenses"], "summary": "Update an offense classification", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Offense ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Offense"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases": {
            "get": {"tags": ["Cases"], "summary": "List disciplinary cases", "parameters": [{"name": "employeeId", "in": "query", "type": "string", "description": "Employee ID"}, {"name": "departmentId", "in": "query", "type": "string", "description": "Department ID"}, {"name": "state", "in": "query", "type": "string", "description": "Comma separated states"}, {"name": "severity", "in": "query", "type": "string", "description": "Severity"}, {"name": "outcome", "in": "query", "type": "string", "description": "Decision outcome"}, {"name": "incidentFrom", "in": "query", "type": "string", "description": "YYYY-MM-DD"}, {"name": "incidentTo", "in": "query", "type": "string", "description": "YYYY-MM-DD"}, {"name": "search", "in": "query", "type": "string", "description": "Reference or description"}, {"name": "page", "in": "query", "type": "integer", "description": "Page"}, {"name": "pageSize", "in": "query", "type": "integer", "description": "Page size"}, {"name": "sortBy", "in": "query", "type": "string", "description": "Sort column"}, {"name": "sortOrder", "in": "query", "type": "string", "description": "asc or desc"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Cases"], "summary": "Report a disciplinary case", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Case"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/export": {
            "get": {"tags": ["Cases"], "summary": "Export the case register", "parameters": [{"name": "format", "in": "query", "type": "string", "description": "csv or pdf"}], "produces": ["text/csv", "application/pdf"], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}": {
            "get": {"tags": ["Cases"], "summary": "Get a disciplinary case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Cases"], "summary": "Delete a disciplinary case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/recommendation": {
            "get": {"tags": ["Cases"], "summary": "Advisory sanction from prior warnings", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/history": {
            "get": {"tags": ["Cases"], "summary": "Case audit trail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/show-cause": {
            "post": {"tags": ["Case workflow"], "summary": "Issue the show-cause notice", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/show-cause-response": {
            "post": {"tags": ["Case workflow"], "summary": "Record the show-cause response", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Response"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/investigation": {
            "post": {"tags": ["Case workflow"], "summary": "Move the case into investigation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/hearing": {
            "post": {"tags": ["Case workflow"], "summary": "Schedule the hearing", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Hearing"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/decision-stage": {
            "post": {"tags": ["Case workflow"], "summary": "Move the case to the decision stage", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/decision": {
            "post": {"tags": ["Case workflow"], "summary": "Record the decision", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Decision"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/serve": {
            "post": {"tags": ["Case workflow"], "summary": "Record delivery of the decision", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Delivery"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/close": {
            "post": {"tags": ["Case workflow"], "summary": "Close the case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Settlement"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/appeal": {
            "post": {"tags": ["Case workflow"], "summary": "Move a served case into the appeal stage", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/acknowledge": {
            "post": {"tags": ["Case workflow"], "summary": "Employee acknowledges the case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/contest": {
            "post": {"tags": ["Case workflow"], "summary": "Employee contests the case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Statement"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/letter": {
            "get": {"tags": ["Letters"], "summary": "Get a fresh letter download link", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Letters"], "summary": "Generate the decision letter", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/letters/download": {
            "get": {"tags": ["Letters"], "summary": "Download a letter through a signed link", "parameters": [{"name": "token", "in": "query", "type": "string", "description": "Signed token", "required": true}], "produces": ["application/pdf"], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/cases/{id}/actions": {
            "get": {"tags": ["Actions"], "summary": "List actions of a case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Actions"], "summary": "Draft an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Action"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/submit": {
            "post": {"tags": ["Actions"], "summary": "Submit an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/approve": {
            "post": {"tags": ["Actions"], "summary": "Approve an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/serve": {
            "post": {"tags": ["Actions"], "summary": "Serve an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/complete": {
            "post": {"tags": ["Actions"], "summary": "Complete an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/revoke": {
            "post": {"tags": ["Actions"], "summary": "Revoke an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Reason"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/actions/{id}/appealed": {
            "post": {"tags": ["Actions"], "summary": "Appealed an action", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Action ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/appeals": {
            "get": {"tags": ["Appeals"], "summary": "List appeals of a case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Appeals"], "summary": "File an appeal", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Appeal"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/appeals/{id}/review": {
            "post": {"tags": ["Appeals"], "summary": "Review an appeal", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Appeal ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/appeals/{id}/hearing": {
            "post": {"tags": ["Appeals"], "summary": "Hearing an appeal", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Appeal ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Hearing"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/appeals/{id}/decide": {
            "post": {"tags": ["Appeals"], "summary": "Decide an appeal", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Appeal ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Outcome and decision"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/appeals/{id}/close": {
            "post": {"tags": ["Appeals"], "summary": "Close an appeal", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Appeal ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/cases/{id}/investigations": {
            "get": {"tags": ["Investigations"], "summary": "List investigations of a case", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Investigations"], "summary": "Open an investigation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Case ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Investigation"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/investigations/{id}/complete": {
            "post": {"tags": ["Investigations"], "summary": "Complete an investigation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Investigation ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Findings"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/investigations/{id}/suspend": {
            "post": {"tags": ["Investigations"], "summary": "Suspend an investigation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Investigation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/investigations/{id}/resume": {
            "post": {"tags": ["Investigations"], "summary": "Resume an investigation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Investigation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/document-types": {
            "get": {"tags": ["Documents"], "summary": "List document types", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Documents"], "summary": "Create a document type", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Type"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/documents": {
            "get": {"tags": ["Documents"], "summary": "List employee documents", "parameters": [{"name": "employeeId", "in": "query", "type": "string", "description": "Employee ID"}, {"name": "documentTypeId", "in": "query", "type": "string", "description": "Document type ID"}, {"name": "expiringBefore", "in": "query", "type": "string", "description": "YYYY-MM-DD"}, {"name": "includeArchived", "in": "query", "type": "boolean", "description": "Include archived"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Documents"], "summary": "Upload an employee document", "parameters": [{"name": "file", "in": "formData", "type": "file", "required": true}, {"name": "employeeId", "in": "formData", "type": "string", "required": true}, {"name": "documentTypeId", "in": "formData", "type": "string", "required": false}, {"name": "name", "in": "formData", "type": "string", "required": false}, {"name": "description", "in": "formData", "type": "string", "required": false}, {"name": "uploadDate", "in": "formData", "type": "string", "required": false}, {"name": "expiryDate", "in": "formData", "type": "string", "required": false}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/documents/{id}": {
            "get": {"tags": ["Documents"], "summary": "Get an employee document", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Document ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Documents"], "summary": "Archive an employee document", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Document ID"}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/documents/{id}/download": {
            "get": {"tags": ["Documents"], "summary": "Download the stored file", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Document ID"}], "produces": ["application/octet-stream"], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations": {
            "get": {"tags": ["Resignations"], "summary": "List resignations", "parameters": [{"name": "employeeId", "in": "query", "type": "string", "description": "Employee ID"}, {"name": "state", "in": "query", "type": "string", "description": "State"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Resignations"], "summary": "File a resignation", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Resignation"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations/{id}": {
            "get": {"tags": ["Resignations"], "summary": "Get a resignation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Resignation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations/{id}/confirm": {
            "post": {"tags": ["Resignations"], "summary": "Confirm a resignation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Resignation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations/{id}/approve": {
            "post": {"tags": ["Resignations"], "summary": "Approve a resignation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Resignation ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Resignation type and last day"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations/{id}/cancel": {
            "post": {"tags": ["Resignations"], "summary": "Cancel a resignation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Resignation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/resignations/{id}/reset": {
            "post": {"tags": ["Resignations"], "summary": "Reset a resignation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Resignation ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/exit-interviews": {
            "get": {"tags": ["Exit interviews"], "summary": "List exit interviews", "parameters": [{"name": "resignationId", "in": "query", "type": "string", "description": "Resignation ID"}, {"name": "employeeId", "in": "query", "type": "string", "description": "Employee ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Exit interviews"], "summary": "Record an exit interview", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Interview"}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/exit-interviews/{id}/confirm": {
            "post": {"tags": ["Exit interviews"], "summary": "Confirm an exit interview", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Exit interview ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/exit-interviews/{id}/done": {
            "post": {"tags": ["Exit interviews"], "summary": "Done an exit interview", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Exit interview ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/exit-interviews/{id}/reset": {
            "post": {"tags": ["Exit interviews"], "summary": "Reset an exit interview", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "Exit interview ID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        }
    },
    "definitions": {
        "Pagination": {"type": "object", "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}}
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
