// Package funds keeps the raised-currency balances the sale settles against.
// The chaincode has no native currency, so routed proceeds, escrow holdings
// and refunds are all tracked here as world-state balances.
package funds

import (
	"fmt"
	"math/big"
)

// TransactionContext is the slice of the Kalp SDK transaction context this
// package consumes.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
}

const balanceKeyPrefix = "funds_balance"

func BalanceOf(ctx TransactionContext, account string) (*big.Int, error) {
	balanceKey := fmt.Sprintf("%s_%s", balanceKeyPrefix, account)
	balanceAsBytes, err := ctx.GetState(balanceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get funds balance with Key %s: %v", balanceKey, err)
	}

	balance := big.NewInt(0)
	if balanceAsBytes != nil {
		_, success := balance.SetString(string(balanceAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse funds balance for %s", account)
		}
	}

	return balance, nil
}

func setBalance(ctx TransactionContext, account string, balance *big.Int) error {
	balanceKey := fmt.Sprintf("%s_%s", balanceKeyPrefix, account)
	balanceAsBytes, err := balance.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal funds balance for %s: %v", account, err)
	}

	err = ctx.PutStateWithoutKYC(balanceKey, balanceAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set funds balance for %s: %v", account, err)
	}

	return nil
}

func Credit(ctx TransactionContext, account string, amount *big.Int) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("NegativeAmount for funds credit to %s", account)
	}

	balance, err := BalanceOf(ctx, account)
	if err != nil {
		return err
	}

	balance.Add(balance, amount)

	return setBalance(ctx, account, balance)
}

func Debit(ctx TransactionContext, account string, amount *big.Int) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("NegativeAmount for funds debit from %s", account)
	}

	balance, err := BalanceOf(ctx, account)
	if err != nil {
		return err
	}

	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("InsufficientFunds for %s: balance=%s, amount=%s", account, balance.String(), amount.String())
	}

	balance.Sub(balance, amount)

	return setBalance(ctx, account, balance)
}

// Transfer moves amount between two funds accounts as one debit plus credit.
func Transfer(ctx TransactionContext, from, to string, amount *big.Int) error {
	if err := Debit(ctx, from, amount); err != nil {
		return err
	}

	return Credit(ctx, to, amount)
}
