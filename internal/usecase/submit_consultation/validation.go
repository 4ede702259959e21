package submit_consultation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest проверяет форму и собирает доменную заявку.
// today - текущая дата в часовом поясе слотов
func validateRequest(req *Request, today types.DateString) (*domain.ConsultationRequest, error) {
	consultation := &domain.ConsultationRequest{
		ClientName:         strings.TrimSpace(req.ClientName),
		CompanyName:        strings.TrimSpace(req.CompanyName),
		ClientEmail:        strings.TrimSpace(req.ClientEmail),
		CompanyWebsite:     strings.TrimSpace(req.CompanyWebsite),
		MainChallenge:      strings.TrimSpace(req.MainChallenge),
		TargetAudience:     strings.TrimSpace(req.TargetAudience),
		ServiceLandingPage: req.ServiceLandingPage,
		ServiceSEO:         req.ServiceSEO,
		ServiceMaintenance: req.ServiceMaintenance,
		PreferredDate:      types.DateString(strings.TrimSpace(req.PreferredDate)),
		PreferredTime:      types.TimeString(strings.TrimSpace(req.PreferredTime)),
	}

	if err := validate.Struct(consultation); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, describe(err))
	}

	if err := consultation.PreferredDate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: preferredDate: %v", domain.ErrValidation, err)
	}

	// YYYY-MM-DD сравнивается лексикографически
	if consultation.PreferredDate < today {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrValidation, ErrDateInPast, consultation.PreferredDate)
	}

	if err := consultation.PreferredTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: preferredTime: %v", domain.ErrValidation, err)
	}

	if !domain.IsBaseTimeSlot(consultation.PreferredTime) {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrValidation, ErrTimeNotOffered, consultation.PreferredTime)
	}

	return consultation, nil
}

// describe перечисляет поля, не прошедшие проверку
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
