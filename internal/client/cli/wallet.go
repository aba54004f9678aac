package cli

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vipclub/vipclub-cli/internal/client/api"
	"github.com/vipclub/vipclub-cli/internal/common"
)

// newReferenceID returns a ULID used as the client-side reference of a
// withdrawal request, so a resubmission is recognizable server-side.
func newReferenceID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// parseAmount validates a user-entered amount before any network call.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be a number", common.ErrValidation)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	}
	return v, nil
}

// Wallet prints the current balances.
func (a *App) Wallet(ctx context.Context) error {
	w, err := a.client.Wallet(ctx)
	if err != nil {
		fmt.Println("Could not load wallet:", err)
		return err
	}

	fmt.Printf("Coins:        %.2f\n", w.CoinsBalance)
	fmt.Printf("Stars:        %.2f\n", w.StarsBalance)
	fmt.Printf("Bonus:        %.2f\n", w.BonusBalance)
	fmt.Printf("Withdrawable: %.2f\n", w.WithdrawableBalance)
	fmt.Printf("Deposited:    %.2f   Withdrawn: %.2f\n", w.TotalDeposited, w.TotalWithdrawn)
	return nil
}

// Transactions prints the ledger, optionally filtered by type.
func (a *App) Transactions(ctx context.Context, typeFilter string) error {
	page, err := a.client.Transactions(ctx, api.TransactionQuery{Limit: 20, Type: typeFilter})
	if err != nil {
		fmt.Println("Could not load transactions:", err)
		return err
	}

	if len(page.Transactions) == 0 {
		fmt.Println("No transactions.")
		return nil
	}

	for _, tx := range page.Transactions {
		fmt.Printf("%-14s %-12s %10.2f %-10s %s\n",
			tx.TransactionID, tx.Type, tx.Amount, tx.Status, tx.CreatedAt)
	}
	fmt.Printf("Showing %d of %d\n", len(page.Transactions), page.Total)
	return nil
}

// Deposit adds funds to the wallet (mock payment flow for now).
func (a *App) Deposit(ctx context.Context, amount string) error {
	v, err := parseAmount(amount)
	if err != nil {
		fmt.Println(err)
		return err
	}

	w, txnID, err := a.client.Deposit(ctx, v)
	if err != nil {
		fmt.Println("Deposit failed:", err)
		return err
	}

	fmt.Printf("Deposited %.2f (transaction %s). Coins balance: %.2f\n", v, txnID, w.CoinsBalance)
	return nil
}

// Withdraw requests a withdrawal of the withdrawable balance.
func (a *App) Withdraw(ctx context.Context, amount string) error {
	v, err := parseAmount(amount)
	if err != nil {
		fmt.Println(err)
		return err
	}

	ref, err := newReferenceID()
	if err != nil {
		return err
	}

	w, txnID, err := a.client.Withdraw(ctx, v, ref)
	if err != nil {
		fmt.Println("Withdrawal failed:", err)
		return err
	}

	fmt.Printf("Withdrawal of %.2f requested (transaction %s).\n", v, txnID)
	fmt.Printf("Withdrawable balance: %.2f\n", w.WithdrawableBalance)
	return nil
}

// Transfer moves funds between wallet balances. Balance names omitted on the
// command line are prompted for interactively.
func (a *App) Transfer(ctx context.Context, amount, from, to string) error {
	v, err := parseAmount(amount)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if from == "" {
		from, err = GetSimpleText(a.reader, "From balance (coins, bonus or stars)", os.Stdout)
		if err != nil {
			return err
		}
	}
	if to == "" {
		to, err = GetSimpleText(a.reader, "To balance (coins, bonus or stars)", os.Stdout)
		if err != nil {
			return err
		}
	}
	if from == "" || to == "" {
		err := fmt.Errorf("%w: both balance names are required", common.ErrValidation)
		fmt.Println(err)
		return err
	}

	w, err := a.client.Transfer(ctx, v, from, to)
	if err != nil {
		fmt.Println("Transfer failed:", err)
		return err
	}

	fmt.Printf("Transferred %.2f from %s to %s. Coins: %.2f, Withdrawable: %.2f\n",
		v, from, to, w.CoinsBalance, w.WithdrawableBalance)
	return nil
}
