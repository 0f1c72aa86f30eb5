package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope returned by mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// createProductRequest intentionally requires only the name; the original
// catalog accepts sparse products (no image, no colors) and the API keeps
// that contract.
type createProductRequest struct {
	Image           string   `json:"image"`
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category"`
	Price           float64  `json:"price" validate:"gte=0"`
	Stock           int      `json:"stock" validate:"gte=0"`
	AvailableColors []string `json:"availableColors"`
}

// updateProductRequest is a partial patch: pointer fields distinguish
// "absent" from a legitimate zero value.
type updateProductRequest struct {
	Image           *string   `json:"image"`
	Name            *string   `json:"name"`
	Category        *string   `json:"category"`
	Price           *float64  `json:"price" validate:"omitempty,gte=0"`
	Stock           *int      `json:"stock" validate:"omitempty,gte=0"`
	AvailableColors *[]string `json:"availableColors"`
}
