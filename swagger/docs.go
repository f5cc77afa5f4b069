// Package swagger registers the route documentation served at /swagger/*. It is
// maintained by hand alongside the router in library/internal/handler.
package swagger

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
        "/inicio": {
            "get": {
                "tags": [
                    "books"
                ],
                "summary": "List books",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/curriculo": {
            "get": {
                "tags": [
                    "pages"
                ],
                "summary": "Static info page",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    }
                }
            }
        },
        "/novo": {
            "get": {
                "tags": [
                    "books"
                ],
                "summary": "New book form",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/criar": {
            "post": {
                "tags": [
                    "books"
                ],
                "summary": "Create book",
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "titulo",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "autor",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "categoria",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "ano",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "editora",
                        "in": "formData",
                        "required": false
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/deletar/{id}": {
            "get": {
                "tags": [
                    "books"
                ],
                "summary": "Delete book",
                "security": [
                    {
                        "session": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/editar/{id}": {
            "get": {
                "tags": [
                    "books"
                ],
                "summary": "Edit book form",
                "security": [
                    {
                        "session": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/atualizar/{id}": {
            "post": {
                "tags": [
                    "books"
                ],
                "summary": "Update book",
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "titulo",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "autor",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "categoria",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "ano",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "editora",
                        "in": "formData",
                        "required": false
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/login": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Login form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Start session",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "username",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "password",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "next",
                        "in": "formData",
                        "required": false
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/logout": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "End session",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/cadastro": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Account form",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                }
            },
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Create account",
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "first_name",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "last_name",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "role",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "is_admin",
                        "in": "formData",
                        "required": false
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                }
            }
        },
        "/reservar": {
            "get": {
                "tags": [
                    "reservations"
                ],
                "summary": "Books available for reservation",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/fazer_reserva/{book_id}": {
            "get": {
                "tags": [
                    "reservations"
                ],
                "summary": "Reserve book",
                "security": [
                    {
                        "session": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "book_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/minhas_reservas": {
            "get": {
                "tags": [
                    "reservations"
                ],
                "summary": "My reservations",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Catalog aggregates",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                }
            }
        },
        "/cadastro_autor": {
            "get": {
                "tags": [
                    "authors"
                ],
                "summary": "New author form",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                }
            }
        },
        "/criar_autor": {
            "post": {
                "tags": [
                    "authors"
                ],
                "summary": "Create author",
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "nome",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "biografia",
                        "in": "formData",
                        "required": false
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "302": {
                        "description": "redirect"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                }
            }
        },
        "/confirmacao_autor": {
            "get": {
                "tags": [
                    "authors"
                ],
                "summary": "Author confirmation",
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/handler.Page"
                        }
                    },
                    "302": {
                        "description": "redirect"
                    }
                }
            }
        },
        "/manage/health": {
            "get": {
                "tags": [
                    "manage"
                ],
                "summary": "Liveness",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "page"
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.Page": {
            "type": "object",
            "properties": {
                "view": {
                    "type": "string"
                },
                "flashes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "session": {
            "type": "apiKey",
            "name": "biblioteca_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Biblioteca",
	Description:      "Library catalog: books, authors, accounts and reservations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
