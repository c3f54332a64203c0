package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/shared"
)

var validate *validator.Validate

var youtubeLinkRegex = regexp.MustCompile(shared.YouTubeLinkPattern)

func init() {
	validate = validator.New()
	validate.RegisterValidation("youtube_link", validateYouTubeLink)
	validate.RegisterValidation("request_rating", validateRequestRating)
	validate.RegisterValidation("suggested_score", validateSuggestedScore)
	validate.RegisterValidation("suggested_rating", validateSuggestedRating)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateYouTubeLink(fl validator.FieldLevel) bool {
	return youtubeLinkRegex.MatchString(fl.Field().String())
}

func validateRequestRating(fl validator.FieldLevel) bool {
	return model.RequestRating(fl.Field().String()).Valid()
}

func validateSuggestedScore(fl validator.FieldLevel) bool {
	return model.SuggestedScore(fl.Field().String()).Valid()
}

func validateSuggestedRating(fl validator.FieldLevel) bool {
	return model.SuggestedRating(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "email":
				message = "Invalid email format"
			case "youtube_link":
				message = fieldError.Field() + " must be a valid YouTube link"
			case "request_rating":
				message = fieldError.Field() + " must be a rating between one and ten"
			case "suggested_score":
				message = fieldError.Field() + " must be no_rate, rated, or a score between one and ten"
			case "suggested_rating":
				message = fieldError.Field() + " must be one of rate, feature, epic, legendary, mythic"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errs = append(errs, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errs
}

type Validator interface {
	Validate() error
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    400,
		Message: "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}
