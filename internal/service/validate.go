package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		slog.Default().Warn("validation failed", "err", err)
		return fmt.Errorf("%w: %w", apperror.ErrValidation, err)
	}
	return nil
}

func keyValidate(userID, day string) error {
	if userID == "" {
		slog.Default().Warn("validation failed", "err", apperror.ErrEmptyUserID)
		return fmt.Errorf("%w: %w", apperror.ErrValidation, apperror.ErrEmptyUserID)
	}
	if _, err := time.Parse(model.DayLayout, day); err != nil {
		slog.Default().Warn("validation failed", "day", day, "err", err)
		return fmt.Errorf("%w: %w", apperror.ErrValidation, apperror.ErrDayFormat)
	}
	return nil
}
