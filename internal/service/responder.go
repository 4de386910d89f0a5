package service

import (
	"fmt"

	"mailtriage/internal/model"
)

// responseTemplates interpolate the sender address only. One template per
// category, each with its own tone.
var responseTemplates = map[model.Category]string{
	model.CategoryComplaint: "Dear %s,\n\n" +
		"We are sorry to hear about your experience. Our support team is already looking into this issue. " +
		"We truly care about your complaint and aim to resolve it as quickly as possible.\n\n" +
		"Best Regards,\nSupport Team",

	model.CategoryInquiry: "Hi %s,\n\n" +
		"Thank you for reaching out with your question. We will get back to you shortly with the requested information.\n\n" +
		"Best Regards,\nCustomer Experience Team",

	model.CategoryFeedback: "Hi %s,\n\n" +
		"Thank you for your feedback! We appreciate your input and will take it into consideration. " +
		"We will make sure to pass this along to the team.\n\n" +
		"Best Regards,\nCustomer Success Team",

	model.CategorySupportRequest: "Hi %s,\n\n" +
		"Thank you for letting us know about your issue. Our technical team will review your case and follow up as soon as possible.\n\n" +
		"Best Regards,\nTech Support Team",

	model.CategoryOther: "Hi %s,\n\n" +
		"Thank you for reaching out. We have received your message and will direct it to the right team. " +
		"You'll hear from us soon.\n\n" +
		"Best Regards,\nGeneral Inquiries Team",
}

// RespondTo maps a category to its canned response for the given email.
// The category set is closed, so the missing-template branch is defensive.
func RespondTo(email *model.Email, category model.Category) (string, error) {
	tmpl, ok := responseTemplates[category]
	if !ok {
		return "", &TemplateError{Category: category}
	}
	return fmt.Sprintf(tmpl, email.From), nil
}
