package request

import (
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs:
//   - codigo: six-digit reservation confirmation code
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("codigo", func(fl validator.FieldLevel) bool {
		return usecase.IsConfirmationCode(fl.Field().String())
	})
}
