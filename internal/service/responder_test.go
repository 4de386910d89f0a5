package service

import (
	"errors"
	"strings"
	"testing"

	"mailtriage/internal/model"
)

func TestRespondToInterpolatesSender(t *testing.T) {
	email := &model.Email{ID: "001", From: "customer@example.com"}

	tests := []struct {
		category model.Category
		want     string
	}{
		{model.CategoryComplaint, "Dear customer@example.com,"},
		{model.CategoryInquiry, "Hi customer@example.com,"},
		{model.CategoryFeedback, "Thank you for your feedback"},
		{model.CategorySupportRequest, "technical team"},
		{model.CategoryOther, "direct it to the right team"},
	}

	for _, test := range tests {
		t.Run(test.category.String(), func(t *testing.T) {
			response, err := RespondTo(email, test.category)
			if err != nil {
				t.Fatalf("RespondTo: %v", err)
			}
			if !strings.Contains(response, test.want) {
				t.Fatalf("response missing %q:\n%s", test.want, response)
			}
			if !strings.Contains(response, email.From) {
				t.Fatalf("response does not mention sender:\n%s", response)
			}
		})
	}
}

func TestRespondToUnknownCategory(t *testing.T) {
	email := &model.Email{ID: "001", From: "customer@example.com"}

	_, err := RespondTo(email, model.Category("spam"))
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("error is %T, want *TemplateError", err)
	}
	if err.Error() != "no response template" {
		t.Fatalf("error = %q, want %q", err.Error(), "no response template")
	}
}
