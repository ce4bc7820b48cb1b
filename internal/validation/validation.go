// Package validation holds the format checks applied to caller input
// before it reaches the services. Validators take `any` so they can double
// as prompt validators.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/itsnotganeva/bankproject/internal/constants"
	"github.com/shopspring/decimal"
)

// ValidateAccountNumber checks the 5-digit account number format.
func ValidateAccountNumber(val any) error {
	number, ok := val.(string)
	if !ok {
		return fmt.Errorf("account number must be a string")
	}

	number = strings.TrimSpace(number)

	if len(number) != constants.AccountNumberLen {
		return fmt.Errorf("account number must be exactly %d digits", constants.AccountNumberLen)
	}

	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}

	return nil
}

// ValidateClientName checks the client name format: starts with a capital
// letter, 2 to 25 characters.
func ValidateClientName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("client name must be a string")
	}

	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("client name can't be empty")
	}

	if len(name) < constants.MinClientNameLen || len(name) > constants.MaxClientNameLen {
		return fmt.Errorf("client name length must be between %d and %d",
			constants.MinClientNameLen, constants.MaxClientNameLen)
	}

	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return fmt.Errorf("client name must start with a capital letter")
	}

	return nil
}

// ValidateClientType accepts INDIVIDUAL or INDUSTRIAL.
func ValidateClientType(val any) error {
	clientType, ok := val.(string)
	if !ok {
		return fmt.Errorf("client type must be a string")
	}

	switch strings.ToUpper(strings.TrimSpace(clientType)) {
	case "INDIVIDUAL", "INDUSTRIAL":
		return nil
	default:
		return fmt.Errorf("client type must be INDIVIDUAL or INDUSTRIAL")
	}
}

// ValidateBankName checks that a bank name is present and not too long.
func ValidateBankName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("bank name must be a string")
	}

	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("bank name can't be empty")
	}

	if len(name) > constants.MaxBankNameLen {
		return fmt.Errorf("bank name too long (max %d characters)", constants.MaxBankNameLen)
	}

	return nil
}

// ValidateCurrency accepts one of the supported currency codes. Empty is
// allowed and falls back to the configured default.
func ValidateCurrency(val any) error {
	currency, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))

	if currency == "" {
		return nil
	}

	for _, c := range constants.Currencies {
		if currency == c {
			return nil
		}
	}

	return fmt.Errorf("currency must be one of %s", strings.Join(constants.Currencies, ", "))
}

// ValidateAmount checks that an amount string is a positive decimal with at
// most two fractional digits.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}

	if !d.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	if !d.Shift(2).IsInteger() {
		return fmt.Errorf("amount can't have more than two decimal places")
	}

	return nil
}

// ValidateDate checks the YYYY-MM-DD date format.
func ValidateDate(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("date must be a string")
	}

	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(input)); err != nil {
		return fmt.Errorf("date must be in %s format", constants.DateFormat)
	}

	return nil
}
