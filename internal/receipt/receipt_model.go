package receipt

// Receipt - model for a JSON receipt body. Every scalar field stays a string:
// the API contract constrains their textual format, and parsing happens only
// during scoring, after validation.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// Item - model for a single receipt line entry
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}
