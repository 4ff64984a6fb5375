package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const securePrefix = "https://"

// AllowedPortfolioDomains are the professional-network hosts a portfolio link may point at.
var AllowedPortfolioDomains = []string{"linkedin.com", "github.com"}

// ValidPortfolioLink reports whether link satisfies the portfolio rule.
// An empty link is valid because the field is optional.
func ValidPortfolioLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return true
	}
	if !strings.HasPrefix(strings.ToLower(link), securePrefix) {
		return false
	}
	lower := strings.ToLower(link)
	for _, domain := range AllowedPortfolioDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

// PortfolioMessage describes the portfolio rule for error responses.
const PortfolioMessage = "portfolio link must start with https:// and point to linkedin.com or github.com"

// NewValidator returns a validator with the "portfolio" tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("portfolio", func(fl validator.FieldLevel) bool {
		return ValidPortfolioLink(fl.Field().String())
	})
	return v
}
