// Package token is the fungible-token ledger the crowdsale mints against. It
// lives in the same chaincode as the sale, so every mutation shares the sale
// transaction and commits or reverts with it.
package token

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// TransactionContext is the slice of the Kalp SDK transaction context this
// package consumes.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	SetEvent(name string, payload []byte) error
}

const (
	stateKey         = "token_state"
	supplyKey        = "token_supply"
	balanceKeyPrefix = "token_balance"

	transferEvent = "Transfer"
	mintEvent     = "Mint"
)

// TokenState carries the ledger flags and metadata. Balances and the total
// supply live under their own keys as decimal strings.
type TokenState struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Decimals        uint64 `json:"decimals"`
	Owner           string `json:"owner"`
	Paused          bool   `json:"paused"`
	MintingFinished bool   `json:"mintingFinished"`
}

type TransferEvent struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
}

func Initialize(ctx TransactionContext, name, symbol string, decimals uint64, owner string) error {
	existing, err := ctx.GetState(stateKey)
	if err != nil {
		return fmt.Errorf("failed to get token state: %v", err)
	}
	if existing != nil {
		return ErrTokenAlreadyInitialized
	}

	state := &TokenState{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
		Owner:    owner,
		// The token stays paused until the sale is finalized successfully.
		Paused: true,
	}

	return setTokenState(ctx, state)
}

func GetTokenState(ctx TransactionContext) (*TokenState, error) {
	stateAsBytes, err := ctx.GetState(stateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get token state: %v", err)
	}
	if stateAsBytes == nil {
		return nil, ErrTokenNotInitialized
	}

	var state TokenState
	err = json.Unmarshal(stateAsBytes, &state)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal token state: %v", err)
	}

	return &state, nil
}

func setTokenState(ctx TransactionContext, state *TokenState) error {
	stateAsBytes, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal token state: %v", err)
	}

	err = ctx.PutStateWithoutKYC(stateKey, stateAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set token state: %v", err)
	}

	return nil
}

func TotalSupply(ctx TransactionContext) (*big.Int, error) {
	supplyAsBytes, err := ctx.GetState(supplyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get token supply: %v", err)
	}

	supply := big.NewInt(0)
	if supplyAsBytes != nil {
		_, success := supply.SetString(string(supplyAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse token supply")
		}
	}

	return supply, nil
}

func setTotalSupply(ctx TransactionContext, supply *big.Int) error {
	supplyAsBytes, err := supply.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal token supply: %v", err)
	}

	err = ctx.PutStateWithoutKYC(supplyKey, supplyAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set token supply: %v", err)
	}

	return nil
}

func BalanceOf(ctx TransactionContext, account string) (*big.Int, error) {
	balanceKey := fmt.Sprintf("%s_%s", balanceKeyPrefix, account)
	balanceAsBytes, err := ctx.GetState(balanceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get token balance with Key %s: %v", balanceKey, err)
	}

	balance := big.NewInt(0)
	if balanceAsBytes != nil {
		_, success := balance.SetString(string(balanceAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse token balance for %s", account)
		}
	}

	return balance, nil
}

func setBalance(ctx TransactionContext, account string, balance *big.Int) error {
	balanceKey := fmt.Sprintf("%s_%s", balanceKeyPrefix, account)
	balanceAsBytes, err := balance.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal token balance for %s: %v", account, err)
	}

	err = ctx.PutStateWithoutKYC(balanceKey, balanceAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set token balance for %s: %v", account, err)
	}

	return nil
}

// Mint issues amount to the given account. It refuses once minting is
// finished.
func Mint(ctx TransactionContext, to string, amount *big.Int) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	if state.MintingFinished {
		return ErrMintingFinished
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("NegativeAmount for mint to %s", to)
	}

	balance, err := BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	balance.Add(balance, amount)
	if err := setBalance(ctx, to, balance); err != nil {
		return err
	}

	supply, err := TotalSupply(ctx)
	if err != nil {
		return err
	}
	supply.Add(supply, amount)
	if err := setTotalSupply(ctx, supply); err != nil {
		return err
	}

	return emitTransfer(ctx, mintEvent, "", to, amount)
}

// FinishMinting permanently disables minting. A second call fails.
func FinishMinting(ctx TransactionContext) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	if state.MintingFinished {
		return ErrMintingFinished
	}

	state.MintingFinished = true
	return setTokenState(ctx, state)
}

func Pause(ctx TransactionContext) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	state.Paused = true
	return setTokenState(ctx, state)
}

func Unpause(ctx TransactionContext) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	state.Paused = false
	return setTokenState(ctx, state)
}

// Transfer moves tokens between accounts. It fails while the ledger is paused.
func Transfer(ctx TransactionContext, from, to string, amount *big.Int) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	if state.Paused {
		return ErrTokenPaused
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("NegativeAmount for transfer from %s", from)
	}

	fromBalance, err := BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: account %s, balance=%s, amount=%s", ErrInsufficientBalance, from, fromBalance.String(), amount.String())
	}

	fromBalance.Sub(fromBalance, amount)
	if err := setBalance(ctx, from, fromBalance); err != nil {
		return err
	}

	toBalance, err := BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	toBalance.Add(toBalance, amount)
	if err := setBalance(ctx, to, toBalance); err != nil {
		return err
	}

	return emitTransfer(ctx, transferEvent, from, to, amount)
}

func TransferOwnership(ctx TransactionContext, newOwner string) error {
	state, err := GetTokenState(ctx)
	if err != nil {
		return err
	}

	state.Owner = newOwner
	return setTokenState(ctx, state)
}

func emitTransfer(ctx TransactionContext, name, from, to string, amount *big.Int) error {
	transfer := TransferEvent{
		From:  from,
		To:    to,
		Value: amount.String(),
	}

	transferJSON, err := json.Marshal(transfer)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(name, transferJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
