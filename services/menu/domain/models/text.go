package models

import (
	"regexp"

	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	"github.com/answerking/answerking-api/services/menu/domain"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 200
)

var (
	nameRe        = regexp.MustCompile(`^[a-zA-Z !]+$`)
	descriptionRe = regexp.MustCompile(`^[a-zA-Z .!,#]+$`)
)

// Name is an item or category name: letters, spaces and '!', space runs
// collapsed, 1-50 characters.
type Name string

// NewName normalises s and validates the result.
func NewName(s string) (Name, error) {
	s = compress(s)
	if s == "" || len(s) > maxNameLength || !nameRe.MatchString(s) {
		return "", domain.ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Description is optional free text. The empty Description means none.
type Description string

// NewDescription normalises s and validates the result. Blank input yields
// the empty Description.
func NewDescription(s string) (Description, error) {
	s = compress(s)
	if s == "" {
		return "", nil
	}
	if len(s) > maxDescriptionLength || !descriptionRe.MatchString(s) {
		return "", domain.ErrInvalidDescription
	}
	return Description(s), nil
}

func (d Description) String() string { return string(d) }

func compress(s string) string {
	return pkgvalidator.CompressSpaces(s)
}
