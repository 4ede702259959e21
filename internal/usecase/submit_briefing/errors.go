package submit_briefing

import (
	"fmt"

	"github.com/m04kA/astroya-scheduling/internal/domain"
)

// FieldError поле формы не прошло проверку. Разворачивается в domain.ErrValidation.
type FieldError struct {
	Field string // имя поля формы, как его присылает сайт
	Tag   string // правило validator: required, email, url
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s failed on %s", domain.ErrValidation, e.Field, e.Tag)
}

func (e *FieldError) Unwrap() error {
	return domain.ErrValidation
}
