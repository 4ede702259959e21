package submit_briefing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/astroya-scheduling/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// formFields имена полей формы брифа
var formFields = map[string]string{
	"Name":       "nome",
	"Email":      "email",
	"Company":    "empresa",
	"Phone":      "telefone",
	"WebsiteURL": "linkSite",
}

func validateRequest(req *Request) (*domain.BriefingRequest, error) {
	briefing := &domain.BriefingRequest{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Company:        strings.TrimSpace(req.Company),
		Phone:          strings.TrimSpace(req.Phone),
		Segment:        strings.TrimSpace(req.Segment),
		HasWebsite:     req.HasWebsite,
		WebsiteURL:     strings.TrimSpace(req.WebsiteURL),
		Goal:           strings.TrimSpace(req.Goal),
		OtherGoal:      strings.TrimSpace(req.OtherGoal),
		Services:       strings.TrimSpace(req.Services),
		VisualIdentity: strings.TrimSpace(req.VisualIdentity),
		TargetAudience: strings.TrimSpace(req.TargetAudience),
		Reference:      strings.TrimSpace(req.Reference),
		Stage:          strings.TrimSpace(req.Stage),
		Difficulties:   strings.TrimSpace(req.Difficulties),
	}

	if err := validate.Struct(briefing); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			// первое поле, как в ответе формы
			field, ok := formFields[verrs[0].Field()]
			if !ok {
				field = verrs[0].Field()
			}
			return nil, &FieldError{Field: field, Tag: verrs[0].Tag()}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return briefing, nil
}
