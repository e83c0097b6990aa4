package dto

import "github.com/BruksfildServices01/handyman-marketplace/internal/models"

type SeedServicesDTO struct {
	OK       bool             `json:"ok"`
	Count    int              `json:"count"`
	Services []models.Service `json:"services"`
}

type SeedCategoriesDTO struct {
	OK         bool              `json:"ok"`
	Count      int               `json:"count"`
	Categories []models.Category `json:"categories"`
}
