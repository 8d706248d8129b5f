package usecase

import (
	"context"
	"fmt"
	"strings"

	"orbitmarket/internal/infrastructure/mail"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

// IntakeUseCase forwards public contact and freelancer applications to the
// team inbox. Submissions are not persisted; the mail is the record.
type IntakeUseCase struct {
	mailer      *mail.Mailer
	intakeEmail string
}

func NewIntakeUseCase(mailer *mail.Mailer, intakeEmail string) *IntakeUseCase {
	return &IntakeUseCase{
		mailer:      mailer,
		intakeEmail: intakeEmail,
	}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service" validate:"required,oneof=ai-chatbot model-training web-development mobile-development graphic-design freelancer other"`
	Budget  string `json:"budget" validate:"required,oneof=under-500 500-2000 2000-10000 10000-plus not-sure"`
	Message string `json:"message" validate:"required,min=20,max=2000"`
}

func (uc *IntakeUseCase) SubmitContact(ctx context.Context, input ContactInput) error {
	if uc.mailer == nil || !uc.mailer.Enabled() {
		return errors.ServiceUnavailable("Contact form is currently unavailable", nil)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Email: %s\n", input.Email)
	if input.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", input.Phone)
	}
	fmt.Fprintf(&b, "Service: %s\n", input.Service)
	fmt.Fprintf(&b, "Budget: %s\n\n", input.Budget)
	fmt.Fprintf(&b, "%s\n", input.Message)

	if err := uc.mailer.Send(uc.intakeEmail, input.Email, "[Contact] "+input.Service, b.String()); err != nil {
		logger.Error("Failed to send contact mail: %v", err)
		return errors.Internal("Failed to submit contact form", err)
	}

	return nil
}

type FreelancerApplicationInput struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role" validate:"required,min=2,max=100"`
	Skills       string `json:"skills" validate:"required,min=2,max=500"`
	PortfolioURL string `json:"portfolioUrl" validate:"required,url"`
	GithubURL    string `json:"githubUrl,omitempty" validate:"omitempty,url"`
	LinkedinURL  string `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	FiverrURL    string `json:"fiverrUrl,omitempty" validate:"omitempty,url"`
	HourlyRate   string `json:"hourlyRate" validate:"required,min=1"`
	Experience   string `json:"experience" validate:"required,oneof=0-1 1-3 3-5 5-plus"`
	Bio          string `json:"bio" validate:"required,min=50,max=300"`
	HearAbout    string `json:"hearAbout,omitempty"`
}

func (uc *IntakeUseCase) SubmitFreelancerApplication(ctx context.Context, input FreelancerApplicationInput) error {
	if uc.mailer == nil || !uc.mailer.Enabled() {
		return errors.ServiceUnavailable("Applications are currently unavailable", nil)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New freelancer application\n\n")
	fmt.Fprintf(&b, "Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Email: %s\n", input.Email)
	if input.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", input.Phone)
	}
	fmt.Fprintf(&b, "Role: %s\n", input.Role)
	fmt.Fprintf(&b, "Skills: %s\n", input.Skills)
	fmt.Fprintf(&b, "Experience: %s years\n", input.Experience)
	fmt.Fprintf(&b, "Hourly rate: %s\n", input.HourlyRate)
	fmt.Fprintf(&b, "Portfolio: %s\n", input.PortfolioURL)
	if input.GithubURL != "" {
		fmt.Fprintf(&b, "GitHub: %s\n", input.GithubURL)
	}
	if input.LinkedinURL != "" {
		fmt.Fprintf(&b, "LinkedIn: %s\n", input.LinkedinURL)
	}
	if input.FiverrURL != "" {
		fmt.Fprintf(&b, "Fiverr: %s\n", input.FiverrURL)
	}
	if input.HearAbout != "" {
		fmt.Fprintf(&b, "Heard about us via: %s\n", input.HearAbout)
	}
	fmt.Fprintf(&b, "\n%s\n", input.Bio)

	if err := uc.mailer.Send(uc.intakeEmail, input.Email, "[Freelancer] Application from "+input.Name, b.String()); err != nil {
		logger.Error("Failed to send application mail: %v", err)
		return errors.Internal("Failed to submit application", err)
	}

	return nil
}
