// Package docs holds the swagger description of the HTTP API, in the layout
// produced by swag init.
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
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/ready": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Readiness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"description": "Checks that the storage backend answers."
			}
		},
		"/federations": {
			"post": {
				"tags": [
					"federations"
				],
				"summary": "Create a federation",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Federation"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "services.CreateFederationInput",
						"name": "federation",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.CreateFederationInput"
						}
					}
				]
			},
			"get": {
				"tags": [
					"federations"
				],
				"summary": "List federations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Federation"
							}
						}
					}
				}
			}
		},
		"/federations/{code}": {
			"get": {
				"tags": [
					"federations"
				],
				"summary": "Get a federation by code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Federation"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Federation code",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/players": {
			"post": {
				"tags": [
					"players"
				],
				"summary": "Create a player",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Player"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "services.PlayerInput",
						"name": "player",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.PlayerInput"
						}
					}
				]
			},
			"get": {
				"tags": [
					"players"
				],
				"summary": "List players",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Player"
							}
						}
					}
				},
				"description": "Optional case-insensitive substring filter on the player name.",
				"parameters": [
					{
						"type": "string",
						"description": "Name contains",
						"name": "search",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/players/{id}": {
			"get": {
				"tags": [
					"players"
				],
				"summary": "Get a player",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Player"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Player ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"players"
				],
				"summary": "Replace a player",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Player"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"description": "Replaces every mutable field; id and created_at are kept.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Player ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "services.PlayerInput",
						"name": "player",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.PlayerInput"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"players"
				],
				"summary": "Delete a player",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Player ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/players/{id}/results": {
			"get": {
				"tags": [
					"results"
				],
				"summary": "Tournament history of a player",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ResultWithTournament"
							}
						}
					}
				},
				"description": "Results with their tournament, most recent tournament first. Results whose tournament no longer exists are omitted.",
				"parameters": [
					{
						"type": "string",
						"description": "Player ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tournaments": {
			"post": {
				"tags": [
					"tournaments"
				],
				"summary": "Create a tournament",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Tournament"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "services.TournamentInput",
						"name": "tournament",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.TournamentInput"
						}
					}
				]
			},
			"get": {
				"tags": [
					"tournaments"
				],
				"summary": "List tournaments, most recent first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Tournament"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Name contains",
						"name": "search",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/tournaments/{id}": {
			"get": {
				"tags": [
					"tournaments"
				],
				"summary": "Get a tournament",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Tournament"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"tournaments"
				],
				"summary": "Replace a tournament",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Tournament"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "services.TournamentInput",
						"name": "tournament",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.TournamentInput"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"tournaments"
				],
				"summary": "Delete a tournament",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tournaments/{id}/results": {
			"get": {
				"tags": [
					"results"
				],
				"summary": "Standings of a tournament",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ResultWithPlayer"
							}
						}
					}
				},
				"description": "Results with their player, ascending by rank. Results whose player no longer exists are omitted.",
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tournaments/{id}/results/export": {
			"post": {
				"tags": [
					"results"
				],
				"summary": "Export tournament standings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.StandingsExport"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Exports are not configured",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Builds an xlsx workbook of the standings and uploads it to object storage.",
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tournaments/{id}/live": {
			"get": {
				"tags": [
					"results"
				],
				"summary": "Live results feed of a tournament",
				"description": "Websocket; every recorded result of the tournament is pushed as a RESULT_CREATED message.",
				"parameters": [
					{
						"type": "string",
						"description": "Tournament ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					}
				}
			}
		},
		"/tournament-results": {
			"post": {
				"tags": [
					"results"
				],
				"summary": "Record a tournament result",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TournamentResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"description": "Tournament and player ids are stored as given; they are not checked.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "services.ResultInput",
						"name": "result",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.ResultInput"
						}
					}
				]
			}
		},
		"/search": {
			"get": {
				"tags": [
					"search"
				],
				"summary": "Search players, tournaments and federations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SearchResults"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"description": "Case-insensitive substring match; at most 10 hits per category.",
				"parameters": [
					{
						"type": "string",
						"description": "Search text",
						"name": "q",
						"in": "query",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"models.Federation": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Player": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"federation": {
					"type": "string"
				},
				"rating": {
					"type": "integer"
				},
				"title": {
					"type": "string",
					"enum": [
						"GM",
						"IM",
						"FM",
						"CM",
						"WGM",
						"WIM",
						"WFM",
						"WCM",
						""
					]
				},
				"birth_year": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Tournament": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"format": "date-time"
				},
				"end_date": {
					"type": "string",
					"format": "date-time"
				},
				"rounds": {
					"type": "integer"
				},
				"time_control": {
					"type": "string"
				},
				"arbiter": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.TournamentResult": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"tournament_id": {
					"type": "string"
				},
				"player_id": {
					"type": "string"
				},
				"points": {
					"type": "number"
				},
				"rank": {
					"type": "integer"
				},
				"tiebreak1": {
					"type": "number"
				},
				"tiebreak2": {
					"type": "number"
				},
				"tiebreak3": {
					"type": "number"
				},
				"performance_rating": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.ResultWithPlayer": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"tournament_id": {
					"type": "string"
				},
				"player_id": {
					"type": "string"
				},
				"points": {
					"type": "number"
				},
				"rank": {
					"type": "integer"
				},
				"tiebreak1": {
					"type": "number"
				},
				"tiebreak2": {
					"type": "number"
				},
				"tiebreak3": {
					"type": "number"
				},
				"performance_rating": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"player": {
					"$ref": "#/definitions/models.Player"
				}
			}
		},
		"models.ResultWithTournament": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"tournament_id": {
					"type": "string"
				},
				"player_id": {
					"type": "string"
				},
				"points": {
					"type": "number"
				},
				"rank": {
					"type": "integer"
				},
				"tiebreak1": {
					"type": "number"
				},
				"tiebreak2": {
					"type": "number"
				},
				"tiebreak3": {
					"type": "number"
				},
				"performance_rating": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"tournament": {
					"$ref": "#/definitions/models.Tournament"
				}
			}
		},
		"models.SearchResults": {
			"type": "object",
			"properties": {
				"players": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Player"
					}
				},
				"tournaments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Tournament"
					}
				},
				"federations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Federation"
					}
				}
			}
		},
		"services.CreateFederationInput": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			},
			"required": [
				"code",
				"name"
			]
		},
		"services.PlayerInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"federation": {
					"type": "string"
				},
				"rating": {
					"type": "integer"
				},
				"title": {
					"type": "string",
					"enum": [
						"GM",
						"IM",
						"FM",
						"CM",
						"WGM",
						"WIM",
						"WFM",
						"WCM",
						""
					]
				},
				"birth_year": {
					"type": "integer"
				}
			},
			"required": [
				"name",
				"federation"
			]
		},
		"services.TournamentInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"format": "date-time"
				},
				"end_date": {
					"type": "string",
					"format": "date-time"
				},
				"rounds": {
					"type": "integer"
				},
				"time_control": {
					"type": "string"
				},
				"arbiter": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"location",
				"start_date",
				"end_date",
				"rounds",
				"time_control",
				"arbiter"
			]
		},
		"services.ResultInput": {
			"type": "object",
			"properties": {
				"tournament_id": {
					"type": "string"
				},
				"player_id": {
					"type": "string"
				},
				"points": {
					"type": "number"
				},
				"rank": {
					"type": "integer"
				},
				"tiebreak1": {
					"type": "number"
				},
				"tiebreak2": {
					"type": "number"
				},
				"tiebreak3": {
					"type": "number"
				},
				"performance_rating": {
					"type": "integer"
				}
			},
			"required": [
				"tournament_id",
				"player_id",
				"points",
				"rank"
			]
		},
		"services.StandingsExport": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"url": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Chess Registry API",
	Description:      "Federations, players, tournaments and tournament results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
