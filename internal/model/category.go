package model

// Category is one of the closed set of classification labels.
type Category string

const (
	CategoryComplaint      Category = "complaint"
	CategoryInquiry        Category = "inquiry"
	CategoryFeedback       Category = "feedback"
	CategorySupportRequest Category = "support_request"
	CategoryOther          Category = "other"
)

// Categories lists all valid categories in a stable order, used to build
// the classification prompt.
var Categories = []Category{
	CategoryComplaint,
	CategoryInquiry,
	CategoryFeedback,
	CategorySupportRequest,
	CategoryOther,
}

// ParseCategory maps an already-normalized string onto the closed set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryComplaint, CategoryInquiry, CategoryFeedback,
		CategorySupportRequest, CategoryOther:
		return Category(s), true
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}
