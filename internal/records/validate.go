package records

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safemap/internal/models"
)

var validate = validator.New()

// Validate проверяет запись после Sanitize: обязательный external_id,
// допустимые значения перечислений и диапазоны координат
func Validate(p *models.MissingPerson) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: record %q: %v", ErrInvalidPayload, p.ExternalID, err)
	}
	return nil
}
