package fooditems

import "github.com/robinspt/food-inventory-system/pkg/openapi"

type spec struct {
	List          *openapi.Operation
	Create        *openapi.Operation
	Find          *openapi.Operation
	Update        *openapi.Operation
	Delete        *openapi.Operation
	Notifications *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List food items",
		Description: "Returns a paginated list of food items, soonest expiration first by default",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search in name and storage location", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, '-' prefix for descending", false),
			openapi.QueryParam("status", "string", "Filter by status (active, warning, expired)", false),
			openapi.QueryParam("storage_location", "string", "Filter by exact storage location", false),
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated food items", "FoodItemPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create food item",
		Description: "Stores a food item. Provide expiration_date, or production_date with an expiry period.",
		RequestBody: openapi.RequestBodyJSON("CreateFoodItem", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Food item created", "FoodItem"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get food item",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Food item ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item details", "FoodItem"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update food item",
		Description: "Partially updates a food item. Changing a date field recomputes the expiration date.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Food item ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateFoodItem", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item updated", "FoodItem"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary: "Delete food item",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Food item ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Food item deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Notifications: &openapi.Operation{
		Summary:     "Expiration notifications",
		Description: "Returns items in warning or expired status, ordered by expiration date",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Items needing attention",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: openapi.ArrayOf("FoodItem")},
				},
			},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	status := &openapi.Schema{
		Type: "string",
		Enum: []string{string(StatusActive), string(StatusWarning), string(StatusExpired)},
	}
	unit := &openapi.Schema{
		Type: "string",
		Enum: []string{string(UnitDays), string(UnitMonths)},
	}

	return map[string]*openapi.Schema{
		"FoodItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                  {Type: "integer", Format: "int64"},
				"name":                {Type: "string", Example: "Milk"},
				"production_date":     {Type: "string", Format: "date"},
				"expiry_period_value": {Type: "integer"},
				"expiry_period_unit":  unit,
				"quantity":            {Type: "integer", Minimum: openapi.Min(0)},
				"storage_location":    {Type: "string", Example: "Fridge"},
				"expiration_date":     {Type: "string", Format: "date"},
				"status":              status,
				"created_at":          {Type: "string", Format: "date-time"},
				"updated_at":          {Type: "string", Format: "date-time"},
			},
		},
		"CreateFoodItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":                {Type: "string"},
				"quantity":            {Type: "integer", Minimum: openapi.Min(1)},
				"storage_location":    {Type: "string"},
				"production_date":     {Type: "string", Format: "date"},
				"expiry_period_value": {Type: "integer"},
				"expiry_period_unit":  unit,
				"expiration_date":     {Type: "string", Format: "date"},
			},
			Required: []string{"name", "quantity"},
		},
		"UpdateFoodItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":                {Type: "string"},
				"quantity":            {Type: "integer", Minimum: openapi.Min(0)},
				"storage_location":    {Type: "string"},
				"production_date":     {Type: "string", Format: "date"},
				"expiry_period_value": {Type: "integer"},
				"expiry_period_unit":  unit,
				"status":              status,
			},
		},
		"FoodItemPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        openapi.ArrayOf("FoodItem"),
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
