package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"market-master/domain"
)

var ErrFormNotFound = errors.New("form not found")

const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return len(nonDigits.ReplaceAllString(phone, "")) >= MinPhoneDigits
}

// ParseFormSchema reads the field rules of the first form[data-validate] in
// an HTML document.
func ParseFormSchema(r io.Reader) ([]domain.FormField, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse form html: %w", err)
	}

	form := doc.Find("form[data-validate]").First()
	if form.Length() == 0 {
		return nil, errors.New("no form[data-validate] element")
	}

	var fields []domain.FormField
	form.Find("input, textarea, select").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			return
		}

		typ := domain.FieldText
		if goquery.NodeName(sel) == "input" {
			if t, ok := sel.Attr("type"); ok && t != "" {
				typ = domain.FieldType(strings.ToLower(t))
			}
		}
		switch typ {
		case "submit", "button", "hidden", "reset":
			return
		}

		_, required := sel.Attr("required")
		fields = append(fields, domain.FormField{Name: name, Type: typ, Required: required})
	})
	return fields, nil
}

// ValidateField checks one field the way the page does on blur: format
// rules apply to optional fields too once they have a value.
func ValidateField(field domain.FormField, value string) (string, bool) {
	if field.Required && strings.TrimSpace(value) == "" {
		return MsgRequired, false
	}
	if field.Type == domain.FieldEmail && value != "" && !IsValidEmail(value) {
		return MsgInvalidEmail, false
	}
	if field.Type == domain.FieldTel && value != "" && !IsValidPhone(value) {
		return MsgInvalidPhone, false
	}
	return "", true
}

// ValidateSubmission checks a submitted form the way the page does on
// submit: only required fields are looked at.
func ValidateSubmission(fields []domain.FormField, values url.Values) domain.FormValidationResult {
	result := domain.FormValidationResult{Valid: true}
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if msg, ok := ValidateField(f, values.Get(f.Name)); !ok {
			result.Valid = false
			result.Errors = append(result.Errors, domain.FieldError{Field: f.Name, Message: msg})
			if result.Focus == "" {
				result.Focus = f.Name
			}
		}
	}
	return result
}

// FormService validates submissions against the forms embedded in the site.
type FormService struct {
	schemas map[string][]domain.FormField
}

// NewFormService loads every *.html file in fsys; the form name is the file
// name without extension.
func NewFormService(fsys fs.FS) (*FormService, error) {
	matches, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	s := &FormService{schemas: make(map[string][]domain.FormField, len(matches))}
	for _, m := range matches {
		f, err := fsys.Open(m)
		if err != nil {
			return nil, err
		}
		fields, err := ParseFormSchema(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("form %s: %w", m, err)
		}
		s.schemas[strings.TrimSuffix(m, path.Ext(m))] = fields
	}
	return s, nil
}

func (s *FormService) Schema(name string) ([]domain.FormField, error) {
	fields, ok := s.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrFormNotFound)
	}
	return fields, nil
}

func (s *FormService) Validate(name string, values url.Values) (domain.FormValidationResult, error) {
	fields, err := s.Schema(name)
	if err != nil {
		return domain.FormValidationResult{}, err
	}
	return ValidateSubmission(fields, values), nil
}
