package models

// Wallet is the server-side wallet snapshot for the current user. All
// accounting happens on the backend; the client only displays these numbers.
type Wallet struct {
	UserID              string  `json:"user_id"`
	CoinsBalance        float64 `json:"coins_balance"`
	StarsBalance        float64 `json:"stars_balance"`
	BonusBalance        float64 `json:"bonus_balance"`
	WithdrawableBalance float64 `json:"withdrawable_balance"`
	TotalDeposited      float64 `json:"total_deposited"`
	TotalWithdrawn      float64 `json:"total_withdrawn"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

// TransactionType values mirror the backend ledger enum.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
	TransactionBonus      = "bonus"
	TransactionTransfer   = "transfer"
)

// Transaction is one wallet ledger row.
type Transaction struct {
	TransactionID string  `json:"transaction_id"`
	UserID        string  `json:"user_id"`
	Type          string  `json:"transaction_type"`
	Amount        float64 `json:"amount"`
	CurrencyType  string  `json:"currency_type"`
	Status        string  `json:"status"`
	ReferenceID   string  `json:"reference_id,omitempty"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// TransactionPage is the paginated response of the transactions listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}
