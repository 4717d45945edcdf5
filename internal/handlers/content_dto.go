package handlers

import "campaign-backend/internal/models"

type ContentRequest struct {
	Page    string             `json:"page"`
	Key     string             `json:"key"`
	Type    models.ContentType `json:"type"`
	ValueEn string             `json:"valueEn"`
	ValueNp string             `json:"valueNp"`
}

type ContentUpdateRequest struct {
	Page    *string             `json:"page"`
	Key     *string             `json:"key"`
	Type    *models.ContentType `json:"type"`
	ValueEn *string             `json:"valueEn"`
	ValueNp *string             `json:"valueNp"`
}

type SettingsRequest struct {
	Settings []ContentRequest `json:"settings"`
}
