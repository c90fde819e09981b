package models

import "fmt"

// Asset is a token balance shown in the side panel.
type Asset struct {
	Symbol string
	Amount int64
}

func (a Asset) String() string {
	return fmt.Sprintf("%s: %d", a.Symbol, a.Amount)
}

// PlaceholderAssets are shown until balances are queried per account.
func PlaceholderAssets() []Asset {
	return []Asset{
		{Symbol: "scrt", Amount: 20},
		{Symbol: "SHD", Amount: 30},
	}
}

// PlaceholderRowCount is the number of rows in the central list.
const PlaceholderRowCount = 5

// PlaceholderRow returns the label of row i, counting from zero.
func PlaceholderRow(i int) string {
	return fmt.Sprintf("This is row %d", i+1)
}
