package models

import (
	"regexp"

	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	"github.com/answerking/answerking-api/services/order/domain"
)

const maxAddressLength = 200

var addressRe = regexp.MustCompile(`^[a-zA-Z0-9 ,-]+$`)

// Address is a delivery address with runs of spaces collapsed.
type Address string

// NewAddress normalises s and checks its length and character set.
func NewAddress(s string) (Address, error) {
	s = pkgvalidator.CompressSpaces(s)
	if s == "" || len(s) > maxAddressLength || !addressRe.MatchString(s) {
		return "", domain.ErrInvalidAddress
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }
