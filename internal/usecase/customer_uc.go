package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"custdesk/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

// Submit trims the six raw fields, validates them all, and appends one
// customer row. Validation failures return *domain.ValidationError and
// never touch storage.
func (uc *CustomerUC) Submit(ctx context.Context, in domain.FormInput) (int64, error) {
	sub := uuid.New()
	in = trimmed(in)

	if violations := domain.CheckAll(in); len(violations) > 0 {
		log.Debug().
			Str("submission", sub.String()).
			Int("violations", len(violations)).
			Msg("submission rejected")
		return 0, &domain.ValidationError{Violations: violations}
	}

	c := &domain.Customer{
		Name:             in.Name,
		Birthday:         in.Birthday,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		PreferredContact: domain.ContactMethod(in.PreferredContact),
	}
	id, err := uc.Customers.Insert(ctx, c)
	if err != nil {
		log.Error().Str("submission", sub.String()).Err(err).Msg("insert failed")
		return 0, err
	}
	log.Info().Str("submission", sub.String()).Int64("id", id).Msg("customer saved")
	return id, nil
}

func trimmed(in domain.FormInput) domain.FormInput {
	return domain.FormInput{
		Name:             strings.TrimSpace(in.Name),
		Birthday:         strings.TrimSpace(in.Birthday),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Address:          strings.TrimSpace(in.Address),
		PreferredContact: strings.TrimSpace(in.PreferredContact),
	}
}
