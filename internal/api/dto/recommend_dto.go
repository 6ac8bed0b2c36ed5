package dto

type SaveRecommendDTO struct {
	Keyword     string  `json:"keyword" validate:"required,max=255"`
	Kd          *string `json:"kd" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	IsTopReport bool    `json:"isTopReport"`
	Note        *string `json:"note" validate:"omitempty,max=500"`
}
