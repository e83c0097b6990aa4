package dto

type PriceQuoteDTO struct {
	TotalPriceQAR int `json:"totalPriceQAR"`
}
