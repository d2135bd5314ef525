package configs

// Currency controls how amounts are displayed. Ledger amounts are always
// integers in the smallest unit; Decimals is the number of those units per
// whole coin expressed as a power of ten (9 for lamports per SOL).
type Currency struct {
	Decimals int32  `env:"DECIMALS" envDefault:"9"`
	Symbol   string `env:"SYMBOL" envDefault:"SOL"`
}
