package openapi

// NewComponents returns the components shared by every route group: the
// error envelope, pagination schemas and the common error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
				Required: []string{"error"},
			},
			"Message": {
				Type: "object",
				Properties: map[string]*Schema{
					"message": {Type: "string"},
				},
			},
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Minimum: Min(1), Example: 1},
					"page_size": {Type: "integer", Minimum: Min(1), Example: 20},
					"search":    {Type: "string"},
					"sort":      {Type: "string", Description: "Comma-separated fields, '-' prefix for descending", Example: "-expiration_date,name"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":   errorResponse("Invalid request"),
			"NotFound":     errorResponse("Resource not found"),
			"Conflict":     errorResponse("Resource already exists"),
			"Unauthorized": errorResponse("Invalid credentials"),
		},
	}
}

// AddSchemas merges schemas into the components. Existing names are replaced.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}
