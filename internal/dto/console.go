package dto

// FormFields mirrors the operator form. Every value is the raw text typed by
// the operator.
type FormFields struct {
	ID                   string `json:"id" form:"id"`
	Name                 string `json:"name" form:"name"`
	ProductID            string `json:"product_id" form:"product_id"`
	RecommendedProductID string `json:"recommended_product_id" form:"recommended_product_id"`
	RecommendationType   string `json:"recommendation_type" form:"recommendation_type"`
}

// ResultTable is the rendered search result.
type ResultTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ConsoleView is the JSON representation of one operator session.
type ConsoleView struct {
	Form    FormFields   `json:"form"`
	Message string       `json:"message"`
	Results *ResultTable `json:"results,omitempty"`
}
