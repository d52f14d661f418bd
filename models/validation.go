package models

import "github.com/rpupo63/portfolio-site-backend/errs"

func missingField(name string) error {
	return errs.NewMissingRequiredFieldError(name)
}

func invalidField(name, reason string) error {
	return errs.NewInvalidFieldError(name, reason)
}
