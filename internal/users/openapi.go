package users

import "github.com/robinspt/food-inventory-system/pkg/openapi"

type spec struct {
	Register *openapi.Operation
	Login    *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the account endpoints.
var Spec = spec{
	Register: &openapi.Operation{
		Summary:     "Register user",
		Description: "Creates an account with a bcrypt-hashed password",
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("User registered", "Message"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Login: &openapi.Operation{
		Summary:     "Log in",
		Description: "Verifies a username and password",
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Login successful", "LoginResult"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
}

// Schemas returns the component schemas used by the account endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Credentials": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string", Example: "alice"},
				"password": {Type: "string", Format: "password"},
			},
			Required: []string{"username", "password"},
		},
		"LoginResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message":  {Type: "string"},
				"username": {Type: "string"},
			},
		},
	}
}
