package model

import "time"

// SecurityType classifies a holding. The set is closed: validation and the
// analytics engine both reject values outside it.
type SecurityType string

const (
	SecurityStock      SecurityType = "stock"
	SecurityBond       SecurityType = "bond"
	SecurityETF        SecurityType = "etf"
	SecurityMutualFund SecurityType = "mutual_fund"
	SecurityCash       SecurityType = "cash"
	SecurityCrypto     SecurityType = "crypto"
	SecurityOther      SecurityType = "other"
)

// SecurityTypes lists every valid security type.
var SecurityTypes = []SecurityType{
	SecurityStock,
	SecurityBond,
	SecurityETF,
	SecurityMutualFund,
	SecurityCash,
	SecurityCrypto,
	SecurityOther,
}

// Valid reports whether the security type is one of the closed set.
func (s SecurityType) Valid() bool {
	for _, t := range SecurityTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Holding represents a position in a security as entered by the user.
// Quantity and PurchasePrice are positive by contract; the form layer owns
// that validation and the engine never re-checks it.
type Holding struct {
	ID            string       `json:"id"`
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name,omitempty"`
	SecurityType  SecurityType `json:"securityType"`
	Quantity      float64      `json:"quantity"`
	PurchasePrice float64      `json:"purchasePrice"`
	PurchaseDate  time.Time    `json:"purchaseDate"`
	CurrentPrice  *float64     `json:"currentPrice,omitempty"`
	LastUpdated   time.Time    `json:"lastUpdated"`
}

// PriceOrPurchase returns the current price when one is recorded and falls
// back to the purchase price otherwise.
func (h Holding) PriceOrPurchase() float64 {
	if h.CurrentPrice != nil {
		return *h.CurrentPrice
	}
	return h.PurchasePrice
}
