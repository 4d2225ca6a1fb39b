package domain

type FontSizeTier string

const (
	FontSizeNormal     FontSizeTier = ""
	FontSizeLarge      FontSizeTier = "font-size-large"
	FontSizeExtraLarge FontSizeTier = "font-size-xl"
)

type FontSizePreference struct {
	Tier  FontSizeTier `json:"tier"`
	Label string       `json:"label"`
	Title string       `json:"title"`
}

type FieldType string

const (
	FieldText  FieldType = "text"
	FieldEmail FieldType = "email"
	FieldTel   FieldType = "tel"
)

type FormField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FormValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
	// Focus names the first field in document order that failed.
	Focus string `json:"focus,omitempty"`
}
