package dto

type SendLevelRequest struct {
	LevelID         uint64 `json:"level_id" validate:"required"`
	SuggestedRating string `json:"suggested_rating" validate:"required,suggested_rating"`
	SuggestedScore  string `json:"suggested_score" validate:"required,suggested_score"`
}

func (r SendLevelRequest) Validate() error {
	return validate.Struct(r)
}
