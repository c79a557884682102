// Package escrow holds PublicSale-stage proceeds until the outcome of the sale
// is known. On goal failure it pays depositors back; on goal success it
// forwards its full balance to the sale beneficiary.
package escrow

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/dappuniversity/ico-irl/funds"
)

// TransactionContext is the slice of the Kalp SDK transaction context this
// package consumes.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	SetEvent(name string, payload []byte) error
}

type State string

const (
	Active    State = "Active"
	Refunding State = "Refunding"
	Closed    State = "Closed"
)

const (
	stateKey         = "escrow_state"
	totalKey         = "escrow_total"
	depositKeyPrefix = "escrow_deposit"

	// escrowAccount is the funds-ledger account the escrow holds deposits in.
	escrowAccount = "escrow"

	refundsEnabledEvent = "RefundsEnabled"
	escrowClosedEvent   = "EscrowClosed"
	refundedEvent       = "Refunded"
)

func Initialize(ctx TransactionContext) error {
	existing, err := ctx.GetState(stateKey)
	if err != nil {
		return fmt.Errorf("failed to get escrow state: %v", err)
	}
	if existing != nil {
		return ErrEscrowAlreadyInitialized
	}

	return setState(ctx, Active)
}

func GetState(ctx TransactionContext) (State, error) {
	stateAsBytes, err := ctx.GetState(stateKey)
	if err != nil {
		return "", fmt.Errorf("failed to get escrow state: %v", err)
	}
	if stateAsBytes == nil {
		return "", ErrEscrowNotInitialized
	}

	return State(stateAsBytes), nil
}

func setState(ctx TransactionContext, state State) error {
	err := ctx.PutStateWithoutKYC(stateKey, []byte(state))
	if err != nil {
		return fmt.Errorf("failed to set escrow state: %v", err)
	}

	return nil
}

func DepositOf(ctx TransactionContext, investor string) (*big.Int, error) {
	depositKey := fmt.Sprintf("%s_%s", depositKeyPrefix, investor)
	depositAsBytes, err := ctx.GetState(depositKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow deposit with Key %s: %v", depositKey, err)
	}

	deposit := big.NewInt(0)
	if depositAsBytes != nil {
		_, success := deposit.SetString(string(depositAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse escrow deposit for %s", investor)
		}
	}

	return deposit, nil
}

func setDeposit(ctx TransactionContext, investor string, deposit *big.Int) error {
	depositKey := fmt.Sprintf("%s_%s", depositKeyPrefix, investor)
	depositAsBytes, err := deposit.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal escrow deposit for %s: %v", investor, err)
	}

	err = ctx.PutStateWithoutKYC(depositKey, depositAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set escrow deposit for %s: %v", investor, err)
	}

	return nil
}

func Total(ctx TransactionContext) (*big.Int, error) {
	totalAsBytes, err := ctx.GetState(totalKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow total: %v", err)
	}

	total := big.NewInt(0)
	if totalAsBytes != nil {
		_, success := total.SetString(string(totalAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse escrow total")
		}
	}

	return total, nil
}

func setTotal(ctx TransactionContext, total *big.Int) error {
	totalAsBytes, err := total.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal escrow total: %v", err)
	}

	err = ctx.PutStateWithoutKYC(totalKey, totalAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set escrow total: %v", err)
	}

	return nil
}

// Deposit records amount for investor and moves it into the escrow's funds
// account. Only an active escrow accepts deposits.
func Deposit(ctx TransactionContext, investor string, amount *big.Int) error {
	state, err := GetState(ctx)
	if err != nil {
		return err
	}
	if state != Active {
		return fmt.Errorf("%w: state %s", ErrEscrowNotActive, state)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("NonPositiveAmount for escrow deposit by %s", investor)
	}

	deposit, err := DepositOf(ctx, investor)
	if err != nil {
		return err
	}
	deposit.Add(deposit, amount)
	if err := setDeposit(ctx, investor, deposit); err != nil {
		return err
	}

	total, err := Total(ctx)
	if err != nil {
		return err
	}
	total.Add(total, amount)
	if err := setTotal(ctx, total); err != nil {
		return err
	}

	return funds.Credit(ctx, escrowAccount, amount)
}

// EnableRefunds moves the escrow into its refunding state. Deposits and
// close-out are rejected from here on.
func EnableRefunds(ctx TransactionContext) error {
	state, err := GetState(ctx)
	if err != nil {
		return err
	}
	if state != Active {
		return fmt.Errorf("%w: state %s", ErrEscrowNotActive, state)
	}

	if err := setState(ctx, Refunding); err != nil {
		return err
	}

	err = ctx.SetEvent(refundsEnabledEvent, []byte("{}"))
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

// Refund pays investor back exactly the amount deposited during the sale.
func Refund(ctx TransactionContext, investor string) error {
	state, err := GetState(ctx)
	if err != nil {
		return err
	}
	if state != Refunding {
		return ErrRefundNotEnabled
	}

	deposit, err := DepositOf(ctx, investor)
	if err != nil {
		return err
	}
	if deposit.Sign() == 0 {
		return fmt.Errorf("%w: %s", ErrNoDeposit, investor)
	}

	if err := setDeposit(ctx, investor, big.NewInt(0)); err != nil {
		return err
	}

	total, err := Total(ctx)
	if err != nil {
		return err
	}
	total.Sub(total, deposit)
	if err := setTotal(ctx, total); err != nil {
		return err
	}

	if err := funds.Transfer(ctx, escrowAccount, investor, deposit); err != nil {
		return err
	}

	return emitRefunded(ctx, investor, deposit)
}

// Close forwards the full escrow balance to the beneficiary. It fails once
// refunds have been enabled.
func Close(ctx TransactionContext, beneficiary string) error {
	state, err := GetState(ctx)
	if err != nil {
		return err
	}
	if state != Active {
		return fmt.Errorf("%w: state %s", ErrEscrowNotActive, state)
	}

	total, err := Total(ctx)
	if err != nil {
		return err
	}

	if total.Sign() > 0 {
		if err := funds.Transfer(ctx, escrowAccount, beneficiary, total); err != nil {
			return err
		}
	}

	if err := setTotal(ctx, big.NewInt(0)); err != nil {
		return err
	}
	if err := setState(ctx, Closed); err != nil {
		return err
	}

	closed := struct {
		Beneficiary string `json:"beneficiary"`
		Amount      string `json:"amount"`
	}{Beneficiary: beneficiary, Amount: total.String()}

	closedJSON, err := json.Marshal(closed)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(escrowClosedEvent, closedJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func emitRefunded(ctx TransactionContext, investor string, amount *big.Int) error {
	refunded := struct {
		Investor string `json:"investor"`
		Amount   string `json:"amount"`
	}{Investor: investor, Amount: amount.String()}

	refundedJSON, err := json.Marshal(refunded)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(refundedEvent, refundedJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
