package crowdsale

import (
	"math/big"

	"github.com/dappuniversity/ico-irl/escrow"
	"github.com/dappuniversity/ico-irl/token"
)

// Rate returns the unit price of the active stage, in base units per token.
func (s *SmartContract) Rate(ctx TransactionContext) (string, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return "", err
	}

	stage, err := GetStage(ctx)
	if err != nil {
		return "", err
	}

	return config.RateFor(stage).String(), nil
}

func (s *SmartContract) Wallet(ctx TransactionContext) (string, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return "", err
	}

	return config.Wallet, nil
}

// Token returns the symbol of the token being sold.
func (s *SmartContract) Token(ctx TransactionContext) (string, error) {
	state, err := token.GetTokenState(ctx)
	if err != nil {
		return "", err
	}

	return state.Symbol, nil
}

func (s *SmartContract) Cap(ctx TransactionContext) (string, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return "", err
	}

	return config.Cap, nil
}

func (s *SmartContract) Goal(ctx TransactionContext) (string, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return "", err
	}

	return config.Goal, nil
}

// HasClosed reports whether the sale window has passed.
func (s *SmartContract) HasClosed(ctx TransactionContext) (bool, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return false, err
	}

	now, err := txTime(ctx)
	if err != nil {
		return false, err
	}

	return now > config.ClosingTime, nil
}

func (s *SmartContract) GetStage(ctx TransactionContext) (string, error) {
	stage, err := GetStage(ctx)
	if err != nil {
		return "", err
	}

	return stage.String(), nil
}

func (s *SmartContract) GetUserContribution(ctx TransactionContext, investor string) (string, error) {
	contribution, err := GetContribution(ctx, investor)
	if err != nil {
		return "", err
	}

	return contribution.String(), nil
}

// GoalReached reports whether the raised total has met the success goal.
func (s *SmartContract) GoalReached(ctx TransactionContext) (bool, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return false, err
	}

	raised, err := GetRaisedTotal(ctx)
	if err != nil {
		return false, err
	}

	goalAmount, _ := new(big.Int).SetString(config.Goal, 10)
	return raised.Cmp(goalAmount) >= 0, nil
}

func (s *SmartContract) RaisedAmount(ctx TransactionContext) (string, error) {
	raised, err := GetRaisedTotal(ctx)
	if err != nil {
		return "", err
	}

	return raised.String(), nil
}

func (s *SmartContract) IsInvestorWhitelisted(ctx TransactionContext, investor string) (bool, error) {
	return IsWhitelisted(ctx, investor)
}

func (s *SmartContract) Finalized(ctx TransactionContext) (bool, error) {
	record, err := GetFinalization(ctx)
	if err != nil {
		return false, err
	}

	return record.Finalized, nil
}

// GetDepositOf returns the amount an investor holds in the refund escrow.
func (s *SmartContract) GetDepositOf(ctx TransactionContext, investor string) (string, error) {
	deposit, err := escrow.DepositOf(ctx, investor)
	if err != nil {
		return "", err
	}

	return deposit.String(), nil
}
