package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	AccountNumberLen = 5

	MinClientNameLen = 2
	MaxClientNameLen = 25
	MaxBankNameLen   = 50
)

// Currencies accounts can be denominated in.
var Currencies = []string{"USD", "EUR", "BYN"}
