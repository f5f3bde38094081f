package content

import (
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// ContactInput carries a visitor-submitted contact message.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitContact validates and persists a contact form submission.
func (s *Service) SubmitContact(input ContactInput) (*models.Contact, error) {
	switch {
	case input.Name == "":
		return nil, errs.NewMissingRequiredFieldError("name")
	case input.Email == "":
		return nil, errs.NewMissingRequiredFieldError("email")
	case input.Message == "":
		return nil, errs.NewMissingRequiredFieldError("message")
	}

	contact := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.contacts.Add(contact); err != nil {
		return nil, errs.NewDatabaseError("create", "contact", err)
	}
	return contact, nil
}
