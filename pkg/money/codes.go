package money

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	JPY Code = "JPY" // Japanese Yen
	KWD Code = "KWD" // Kuwaiti Dinar
	GBP Code = "GBP" // British Pound
)

// symbols maps codes that have a well-known prefix symbol.
var symbols = map[Code]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
}
