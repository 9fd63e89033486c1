package dto

// RecommendationResponse is the wire shape of a recommendation returned by the
// REST service. Timestamps stay strings; the console displays them verbatim.
type RecommendationResponse struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	ProductID            int    `json:"product_id"`
	RecommendedProductID int    `json:"recommended_product_id"`
	RecommendationType   string `json:"recommendation_type"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// RecommendationPayload is the create/update body. A nil product id is sent as
// JSON null so the service rejects it.
type RecommendationPayload struct {
	Name                 string `json:"name"`
	ProductID            *int   `json:"product_id"`
	RecommendedProductID *int   `json:"recommended_product_id"`
	RecommendationType   string `json:"recommendation_type"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
