package crowdsale_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/stretchr/testify/require"

	"github.com/dappuniversity/ico-irl/crowdsale"
	"github.com/dappuniversity/ico-irl/escrow"
	"github.com/dappuniversity/ico-irl/funds"
	"github.com/dappuniversity/ico-irl/mocks"
	"github.com/dappuniversity/ico-irl/timelock"
	"github.com/dappuniversity/ico-irl/token"
)

//go:generate counterfeiter -o ../mocks/transactioncontext.go -fake-name TransactionContext . transactionContext
type transactionContext interface {
	crowdsale.TransactionContext
}

//go:generate counterfeiter -o ../mocks/clientidentity.go -fake-name ClientIdentity github.com/hyperledger/fabric-chaincode-go/pkg/cid.ClientIdentity

const (
	admin      = "0b87970433b22494faff1cc7a819e71bddc7880c"
	wallet     = "1111970433b22494faff1cc7a819e71bddc78811"
	investor   = "aaaa970433b22494faff1cc7a819e71bddc78aaa"
	investor2  = "bbbb970433b22494faff1cc7a819e71bddc78bbb"
	outsider   = "cccc970433b22494faff1cc7a819e71bddc78ccc"
	founders   = "dddd970433b22494faff1cc7a819e71bddc78ddd"
	foundation = "eeee970433b22494faff1cc7a819e71bddc78eee"
	partners   = "ffff970433b22494faff1cc7a819e71bddc78fff"

	saleCap  = "100000000000000000000" // 100e18
	saleGoal = "40000000000000000000"  // 40e18

	openingTime = uint64(1000)
	closingTime = uint64(2000)
	releaseTime = uint64(3000)
)

func SetUserID(ctx *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	ctx.GetClientIdentityReturns(clientIdentity)
}

func setTxTime(ctx *mocks.TransactionContext, seconds uint64) {
	ctx.GetTxTimestampStub = func() (*timestamp.Timestamp, error) {
		return &timestamp.Timestamp{Seconds: int64(seconds)}, nil
	}
}

func setupContext() (*mocks.TransactionContext, map[string][]byte) {
	ctx := &mocks.TransactionContext{}
	worldState := map[string][]byte{}
	ctx.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	ctx.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	ctx.DelStateWithoutKYCStub = func(key string) error {
		delete(worldState, key)
		return nil
	}
	setTxTime(ctx, openingTime+500)
	return ctx, worldState
}

func initializeSale(t *testing.T, ctx *mocks.TransactionContext, contract *crowdsale.SmartContract) {
	t.Helper()
	SetUserID(ctx, admin)
	err := contract.Initialize(ctx, wallet, saleCap, saleGoal, openingTime, closingTime, 500, 250, founders, foundation, partners, releaseTime)
	require.NoError(t, err)
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	t.Run("sets up sale, token and escrow", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}

		initializeSale(t, ctx, contract)

		config, err := crowdsale.GetSaleConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, admin, config.Admin)
		require.Equal(t, wallet, config.Wallet)
		require.Equal(t, saleCap, config.Cap)
		require.Equal(t, saleGoal, config.Goal)

		stage, err := crowdsale.GetStage(ctx)
		require.NoError(t, err)
		require.Equal(t, crowdsale.PreSale, stage)

		tokenState, err := token.GetTokenState(ctx)
		require.NoError(t, err)
		require.True(t, tokenState.Paused)
		require.False(t, tokenState.MintingFinished)
		require.Equal(t, admin, tokenState.Owner)

		escrowState, err := escrow.GetState(ctx)
		require.NoError(t, err)
		require.Equal(t, escrow.Active, escrowState)
	})

	t.Run("rejects a second initialization", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}

		initializeSale(t, ctx, contract)
		err := contract.Initialize(ctx, wallet, saleCap, saleGoal, openingTime, closingTime, 500, 250, founders, foundation, partners, releaseTime)
		require.ErrorIs(t, err, crowdsale.ErrAlreadyInitialized)
	})

	tests := []struct {
		name        string
		wallet      string
		cap         string
		goal        string
		opening     uint64
		closing     uint64
		preRate     uint64
		publicRate  uint64
		release     uint64
		errContains string
	}{
		{
			name:        "invalid wallet address",
			wallet:      "not-an-address",
			cap:         saleCap,
			goal:        saleGoal,
			opening:     openingTime,
			closing:     closingTime,
			preRate:     500,
			publicRate:  250,
			release:     releaseTime,
			errContains: "InvalidUserAddress",
		},
		{
			name:        "goal above cap",
			wallet:      wallet,
			cap:         saleGoal,
			goal:        saleCap,
			opening:     openingTime,
			closing:     closingTime,
			preRate:     500,
			publicRate:  250,
			release:     releaseTime,
			errContains: "must not exceed cap",
		},
		{
			name:        "opening after closing",
			wallet:      wallet,
			cap:         saleCap,
			goal:        saleGoal,
			opening:     closingTime,
			closing:     openingTime,
			preRate:     500,
			publicRate:  250,
			release:     releaseTime,
			errContains: "before closingTime",
		},
		{
			name:        "release before closing",
			wallet:      wallet,
			cap:         saleCap,
			goal:        saleGoal,
			opening:     openingTime,
			closing:     closingTime,
			preRate:     500,
			publicRate:  250,
			release:     closingTime,
			errContains: "after closingTime",
		},
		{
			name:        "zero rate",
			wallet:      wallet,
			cap:         saleCap,
			goal:        saleGoal,
			opening:     openingTime,
			closing:     closingTime,
			preRate:     0,
			publicRate:  250,
			release:     releaseTime,
			errContains: "InvalidAmount",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := setupContext()
			contract := &crowdsale.SmartContract{}
			SetUserID(ctx, admin)

			err := contract.Initialize(ctx, tt.wallet, tt.cap, tt.goal, tt.opening, tt.closing, tt.preRate, tt.publicRate, founders, foundation, partners, tt.release)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestBuyTokensValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		investor string
		amount   string
		txTime   uint64
		target   error
		contains string
	}{
		{
			name:     "zero amount",
			investor: investor,
			amount:   "0",
			txTime:   openingTime + 500,
			contains: "InvalidAmount",
		},
		{
			name:     "malformed amount",
			investor: investor,
			amount:   "lots",
			txTime:   openingTime + 500,
			contains: "InvalidAmount",
		},
		{
			name:     "not whitelisted",
			investor: outsider,
			amount:   "2000000000000000",
			txTime:   openingTime + 500,
			target:   crowdsale.ErrNotWhitelisted,
		},
		{
			name:     "before opening",
			investor: investor,
			amount:   "2000000000000000",
			txTime:   openingTime - 1,
			target:   crowdsale.ErrSaleNotOpen,
		},
		{
			name:     "after closing",
			investor: investor,
			amount:   "2000000000000000",
			txTime:   closingTime + 1,
			target:   crowdsale.ErrSaleNotOpen,
		},
		{
			name:     "cap exceeded",
			investor: investor,
			amount:   "100000000000000000001",
			txTime:   openingTime + 500,
			target:   crowdsale.ErrCapExceeded,
		},
		{
			name:     "below investor minimum",
			investor: investor,
			amount:   "1999999999999999",
			txTime:   openingTime + 500,
			target:   crowdsale.ErrBelowInvestorMinimum,
		},
		{
			name:     "above investor maximum",
			investor: investor,
			amount:   "50000000000000000001",
			txTime:   openingTime + 500,
			target:   crowdsale.ErrAboveInvestorMaximum,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := setupContext()
			contract := &crowdsale.SmartContract{}
			initializeSale(t, ctx, contract)
			require.NoError(t, contract.AddToWhitelist(ctx, investor))

			setTxTime(ctx, tt.txTime)
			SetUserID(ctx, tt.investor)
			err := contract.BuyTokens(ctx, tt.amount)
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			if tt.contains != "" {
				require.Contains(t, err.Error(), tt.contains)
			}

			// A rejected purchase leaves the ledger untouched.
			contribution, err := crowdsale.GetContribution(ctx, tt.investor)
			require.NoError(t, err)
			require.Zero(t, contribution.Sign())

			raised, err := crowdsale.GetRaisedTotal(ctx)
			require.NoError(t, err)
			require.Zero(t, raised.Sign())
		})
	}
}

func TestBuyTokensPreSale(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)
	require.NoError(t, contract.AddToWhitelist(ctx, investor))

	// 3.5e18 base units at rate 500 buys 7e15 tokens.
	amount := "3500000000000000000"
	SetUserID(ctx, investor)
	require.NoError(t, contract.BuyTokens(ctx, amount))

	contribution, err := crowdsale.GetContribution(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, amount, contribution.String())

	balance, err := token.BalanceOf(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, "7000000000000000", balance.String())

	// PreSale proceeds go straight to the project wallet.
	walletFunds, err := funds.BalanceOf(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, amount, walletFunds.String())

	raised, err := crowdsale.GetRaisedTotal(ctx)
	require.NoError(t, err)
	require.Equal(t, amount, raised.String())

	escrowTotal, err := escrow.Total(ctx)
	require.NoError(t, err)
	require.Zero(t, escrowTotal.Sign())
}

func TestBuyTokensPublicSale(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)
	require.NoError(t, contract.AddToWhitelist(ctx, investor))
	require.NoError(t, contract.SetCrowdsaleStage(ctx, "PublicSale"))

	// 2e18 base units at rate 250 buys 8e15 tokens.
	amount := "2000000000000000000"
	SetUserID(ctx, investor)
	require.NoError(t, contract.BuyTokens(ctx, amount))

	balance, err := token.BalanceOf(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, "8000000000000000", balance.String())

	// PublicSale proceeds are held by the refund escrow, not the wallet.
	deposit, err := escrow.DepositOf(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, amount, deposit.String())

	walletFunds, err := funds.BalanceOf(ctx, wallet)
	require.NoError(t, err)
	require.Zero(t, walletFunds.Sign())
}

func TestBuyTokensTopUpBelowMinimum(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)
	require.NoError(t, contract.AddToWhitelist(ctx, investor))

	SetUserID(ctx, investor)
	require.NoError(t, contract.BuyTokens(ctx, "2000000000000000"))

	// Once at the minimum, small top-ups are allowed.
	require.NoError(t, contract.BuyTokens(ctx, "500"))

	contribution, err := crowdsale.GetContribution(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, "2000000000000000500", contribution.String())
}

func TestBuyTokensMintingRefused(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)
	require.NoError(t, contract.AddToWhitelist(ctx, investor))

	require.NoError(t, token.FinishMinting(ctx))

	SetUserID(ctx, investor)
	err := contract.BuyTokens(ctx, "2000000000000000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "MintingRefused")
	require.ErrorIs(t, err, token.ErrMintingFinished)
}

func TestSetCrowdsaleStage(t *testing.T) {
	t.Parallel()

	t.Run("admin switches stage and rate follows the tag", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		rate, err := contract.Rate(ctx)
		require.NoError(t, err)
		require.Equal(t, "500", rate)

		require.NoError(t, contract.SetCrowdsaleStage(ctx, "PublicSale"))

		stage, err := contract.GetStage(ctx)
		require.NoError(t, err)
		require.Equal(t, "PublicSale", stage)

		rate, err = contract.Rate(ctx)
		require.NoError(t, err)
		require.Equal(t, "250", rate)
	})

	t.Run("non-admin is rejected and nothing changes", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		SetUserID(ctx, outsider)
		err := contract.SetCrowdsaleStage(ctx, "PublicSale")
		require.ErrorIs(t, err, crowdsale.ErrUnauthorized)

		SetUserID(ctx, admin)
		stage, err := contract.GetStage(ctx)
		require.NoError(t, err)
		require.Equal(t, "PreSale", stage)

		rate, err := contract.Rate(ctx)
		require.NoError(t, err)
		require.Equal(t, "500", rate)
	})

	t.Run("unknown stage name is rejected", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		err := contract.SetCrowdsaleStage(ctx, "FlashSale")
		require.Error(t, err)
		require.Contains(t, err.Error(), "InvalidStage")
	})
}

func TestWhitelist(t *testing.T) {
	t.Parallel()

	t.Run("admin adds many investors", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		require.NoError(t, contract.AddManyToWhitelist(ctx, []string{investor, investor2}))

		for _, id := range []string{investor, investor2} {
			whitelisted, err := contract.IsInvestorWhitelisted(ctx, id)
			require.NoError(t, err)
			require.True(t, whitelisted)
		}

		whitelisted, err := contract.IsInvestorWhitelisted(ctx, outsider)
		require.NoError(t, err)
		require.False(t, whitelisted)
	})

	t.Run("non-admin cannot add", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		SetUserID(ctx, outsider)
		err := contract.AddToWhitelist(ctx, investor)
		require.ErrorIs(t, err, crowdsale.ErrUnauthorized)
	})

	t.Run("one invalid address rejects the batch", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		err := contract.AddManyToWhitelist(ctx, []string{investor, "bogus"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "InvalidUserAddress")
	})
}

// buyAtStage whitelists the investor if needed and executes a purchase as them,
// restoring the admin identity afterwards.
func buyAtStage(t *testing.T, ctx *mocks.TransactionContext, contract *crowdsale.SmartContract, buyer, amount string) {
	t.Helper()
	whitelisted, err := contract.IsInvestorWhitelisted(ctx, buyer)
	require.NoError(t, err)
	if !whitelisted {
		require.NoError(t, contract.AddToWhitelist(ctx, buyer))
	}
	SetUserID(ctx, buyer)
	require.NoError(t, contract.BuyTokens(ctx, amount))
	SetUserID(ctx, admin)
}

func TestFinalizePreconditions(t *testing.T) {
	t.Parallel()

	t.Run("before closing", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		err := contract.Finalize(ctx)
		require.ErrorIs(t, err, crowdsale.ErrSaleNotClosed)
	})

	t.Run("non-admin", func(t *testing.T) {
		t.Parallel()
		ctx, _ := setupContext()
		contract := &crowdsale.SmartContract{}
		initializeSale(t, ctx, contract)

		setTxTime(ctx, closingTime+1)
		SetUserID(ctx, outsider)
		err := contract.Finalize(ctx)
		require.ErrorIs(t, err, crowdsale.ErrUnauthorized)
	})
}

func TestFinalizeGoalReached(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)

	// PreSale purchase of 35e18 at rate 500 mints 7e16 tokens; the PublicSale
	// purchase of 8.75e18 at rate 250 mints 3.5e16. The sold supply of
	// 1.05e17 divides evenly by the 70% sale share.
	buyAtStage(t, ctx, contract, investor, "35000000000000000000")
	require.NoError(t, contract.SetCrowdsaleStage(ctx, "PublicSale"))
	buyAtStage(t, ctx, contract, investor2, "8750000000000000000")

	reached, err := contract.GoalReached(ctx)
	require.NoError(t, err)
	require.True(t, reached)

	setTxTime(ctx, closingTime+1)
	require.NoError(t, contract.Finalize(ctx))

	preSaleSupply := new(big.Int)
	preSaleSupply.SetString("105000000000000000", 10)
	fullSupply := new(big.Int)
	fullSupply.SetString("150000000000000000", 10)
	bucketShare := new(big.Int)
	bucketShare.SetString("15000000000000000", 10)

	// Each reserve bucket holds 10% of the derived full supply, and together
	// the three buckets cover fullSupply - preSaleSupply.
	reserveSum := big.NewInt(0)
	for _, lockID := range []string{"founders", "foundation", "partners"} {
		lock, err := timelock.Get(ctx, lockID)
		require.NoError(t, err)
		require.Equal(t, releaseTime, lock.ReleaseTime)
		require.False(t, lock.Released)

		balance, err := token.BalanceOf(ctx, timelock.Account(lockID))
		require.NoError(t, err)
		require.Equal(t, bucketShare.String(), balance.String())
		reserveSum.Add(reserveSum, balance)
	}
	require.Equal(t, new(big.Int).Sub(fullSupply, preSaleSupply).String(), reserveSum.String())

	supply, err := token.TotalSupply(ctx)
	require.NoError(t, err)
	require.Equal(t, fullSupply.String(), supply.String())

	tokenState, err := token.GetTokenState(ctx)
	require.NoError(t, err)
	require.True(t, tokenState.MintingFinished)
	require.False(t, tokenState.Paused)
	require.Equal(t, wallet, tokenState.Owner)

	// PreSale proceeds went straight to the wallet; the escrowed PublicSale
	// proceeds are forwarded on close-out.
	walletFunds, err := funds.BalanceOf(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, "43750000000000000000", walletFunds.String())

	escrowState, err := escrow.GetState(ctx)
	require.NoError(t, err)
	require.Equal(t, escrow.Closed, escrowState)

	finalized, err := contract.Finalized(ctx)
	require.NoError(t, err)
	require.True(t, finalized)

	// Finalize is single-shot and mints nothing on a repeat attempt.
	err = contract.Finalize(ctx)
	require.ErrorIs(t, err, crowdsale.ErrAlreadyFinalized)

	supplyAfter, err := token.TotalSupply(ctx)
	require.NoError(t, err)
	require.Equal(t, supply.String(), supplyAfter.String())
}

func TestFinalizeGoalNotReached(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)

	require.NoError(t, contract.SetCrowdsaleStage(ctx, "PublicSale"))

	amount := "2000000000000000000"
	buyAtStage(t, ctx, contract, investor, amount)

	// Refunds are rejected while the outcome is unknown.
	SetUserID(ctx, investor)
	err := contract.ClaimRefund(ctx)
	require.ErrorIs(t, err, escrow.ErrRefundNotEnabled)
	SetUserID(ctx, admin)

	setTxTime(ctx, closingTime+1)
	require.NoError(t, contract.Finalize(ctx))

	reached, err := contract.GoalReached(ctx)
	require.NoError(t, err)
	require.False(t, reached)

	escrowState, err := escrow.GetState(ctx)
	require.NoError(t, err)
	require.Equal(t, escrow.Refunding, escrowState)

	// No vesting locks exist on the failure branch.
	_, err = timelock.Get(ctx, "founders")
	require.ErrorIs(t, err, timelock.ErrLockNotFound)

	// The investor gets back exactly the deposited amount.
	SetUserID(ctx, investor)
	require.NoError(t, contract.ClaimRefund(ctx))

	refunded, err := funds.BalanceOf(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, amount, refunded.String())

	deposit, err := escrow.DepositOf(ctx, investor)
	require.NoError(t, err)
	require.Zero(t, deposit.Sign())

	// A second refund claim finds nothing to pay.
	err = contract.ClaimRefund(ctx)
	require.ErrorIs(t, err, escrow.ErrNoDeposit)
}

func TestReleaseLock(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)

	buyAtStage(t, ctx, contract, investor, "35000000000000000000")
	buyAtStage(t, ctx, contract, investor2, "8750000000000000000")

	setTxTime(ctx, closingTime+1)
	require.NoError(t, contract.Finalize(ctx))

	// Too early.
	err := contract.ReleaseLock(ctx, "founders")
	require.ErrorIs(t, err, timelock.ErrReleaseTooEarly)

	lockBalance, err := token.BalanceOf(ctx, timelock.Account("founders"))
	require.NoError(t, err)

	setTxTime(ctx, releaseTime+1)
	require.NoError(t, contract.ReleaseLock(ctx, "founders"))

	beneficiaryBalance, err := token.BalanceOf(ctx, founders)
	require.NoError(t, err)
	require.Equal(t, lockBalance.String(), beneficiaryBalance.String())

	emptied, err := token.BalanceOf(ctx, timelock.Account("founders"))
	require.NoError(t, err)
	require.Zero(t, emptied.Sign())

	// Release is single-shot.
	err = contract.ReleaseLock(ctx, "founders")
	require.ErrorIs(t, err, timelock.ErrNothingToRelease)
}

func TestQueries(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)

	walletAddr, err := contract.Wallet(ctx)
	require.NoError(t, err)
	require.Equal(t, wallet, walletAddr)

	capAmount, err := contract.Cap(ctx)
	require.NoError(t, err)
	require.Equal(t, saleCap, capAmount)

	goalAmount, err := contract.Goal(ctx)
	require.NoError(t, err)
	require.Equal(t, saleGoal, goalAmount)

	symbol, err := contract.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "DAPP", symbol)

	closed, err := contract.HasClosed(ctx)
	require.NoError(t, err)
	require.False(t, closed)

	setTxTime(ctx, closingTime+1)
	closed, err = contract.HasClosed(ctx)
	require.NoError(t, err)
	require.True(t, closed)

	contribution, err := contract.GetUserContribution(ctx, investor)
	require.NoError(t, err)
	require.Equal(t, "0", contribution)

	raised, err := contract.RaisedAmount(ctx)
	require.NoError(t, err)
	require.Equal(t, "0", raised)
}

func TestBuyTokensEmitsEvent(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()
	contract := &crowdsale.SmartContract{}
	initializeSale(t, ctx, contract)
	require.NoError(t, contract.AddToWhitelist(ctx, investor))

	SetUserID(ctx, investor)
	require.NoError(t, contract.BuyTokens(ctx, "3500000000000000000"))

	var purchase crowdsale.TokenPurchaseEvent
	found := false
	for i := 0; i < ctx.SetEventCallCount(); i++ {
		name, payload := ctx.SetEventArgsForCall(i)
		if name == "TokenPurchase" {
			require.NoError(t, json.Unmarshal(payload, &purchase))
			found = true
		}
	}
	require.True(t, found)
	require.Equal(t, investor, purchase.Investor)
	require.Equal(t, "3500000000000000000", purchase.Amount)
	require.Equal(t, "7000000000000000", purchase.TokenAmount)
	require.Equal(t, "PreSale", purchase.Stage)
}

func TestGetUserIdErrors(t *testing.T) {
	t.Parallel()
	ctx, _ := setupContext()

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns("", errors.New("failed to get ID"))
	ctx.GetClientIdentityReturns(clientIdentity)

	_, err := crowdsale.GetUserId(ctx)
	require.Error(t, err)
}
