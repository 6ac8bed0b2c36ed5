package dto

type CreateKeywordDTO struct {
	Keyword     string `json:"keyword" validate:"required,max=255"`
	Position    *int   `json:"position" validate:"omitempty,gte=1"`
	Traffic     int    `json:"traffic" validate:"gte=0"`
	Kd          string `json:"kd" validate:"required,oneof=EASY MEDIUM HARD"`
	IsTopReport bool   `json:"isTopReport"`
}

type UpdateKeywordDTO struct {
	Keyword     string `json:"keyword" validate:"required,max=255"`
	Position    *int   `json:"position" validate:"omitempty,gte=1"`
	Traffic     int    `json:"traffic" validate:"gte=0"`
	Kd          string `json:"kd" validate:"required,oneof=EASY MEDIUM HARD"`
	IsTopReport bool   `json:"isTopReport"`
}
