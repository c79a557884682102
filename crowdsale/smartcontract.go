package crowdsale

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/dappuniversity/ico-irl/escrow"
	"github.com/dappuniversity/ico-irl/funds"
	"github.com/dappuniversity/ico-irl/timelock"
	"github.com/dappuniversity/ico-irl/token"
)

type SmartContract struct {
	kalpsdk.Contract
}

// Initialize sets up the sale. The signer becomes the administrator for every
// gated action; the token ledger starts paused and mintable, owned by the
// sale, and the refund escrow starts active.
func (s *SmartContract) Initialize(
	ctx TransactionContext,
	wallet string,
	cap string,
	goal string,
	openingTime uint64,
	closingTime uint64,
	preSaleRate uint64,
	publicSaleRate uint64,
	foundersFund string,
	foundationFund string,
	partnersFund string,
	releaseTime uint64,
) error {
	existing, err := ctx.GetState(configKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get sale config", err)
	}
	if existing != nil {
		return ErrAlreadyInitialized
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	for _, address := range []string{wallet, foundersFund, foundationFund, partnersFund} {
		if !IsUserAddressValid(address) {
			return fmt.Errorf("%w: %s", ErrInvalidUserAddress, address)
		}
	}

	capAmount, ok := new(big.Int).SetString(cap, 10)
	if !ok || capAmount.Sign() <= 0 {
		return ErrInvalidAmount("cap", cap)
	}
	goalAmount, ok := new(big.Int).SetString(goal, 10)
	if !ok || goalAmount.Sign() <= 0 {
		return ErrInvalidAmount("goal", goal)
	}
	if goalAmount.Cmp(capAmount) > 0 {
		return fmt.Errorf("goal %s must not exceed cap %s", goal, cap)
	}

	if openingTime >= closingTime {
		return fmt.Errorf("openingTime %d must be before closingTime %d", openingTime, closingTime)
	}
	if releaseTime <= closingTime {
		return fmt.Errorf("releaseTime %d must be after closingTime %d", releaseTime, closingTime)
	}
	if preSaleRate == 0 || publicSaleRate == 0 {
		return ErrInvalidAmount("rate", "0")
	}

	if tokenSalePercentage+foundersPercentage+foundationPercentage+partnersPercentage != 100 {
		return fmt.Errorf("distribution percentages must sum to 100")
	}

	config := &SaleConfig{
		Admin:          signer,
		Wallet:         wallet,
		Cap:            cap,
		Goal:           goal,
		OpeningTime:    openingTime,
		ClosingTime:    closingTime,
		PreSaleRate:    preSaleRate,
		PublicSaleRate: publicSaleRate,
		FoundersFund:   foundersFund,
		FoundationFund: foundationFund,
		PartnersFund:   partnersFund,
		ReleaseTime:    releaseTime,
	}
	if err := SetSaleConfig(ctx, config); err != nil {
		return err
	}

	if err := SetStage(ctx, PreSale); err != nil {
		return err
	}
	if err := SetRaisedTotal(ctx, big.NewInt(0)); err != nil {
		return err
	}

	if err := token.Initialize(ctx, tokenName, tokenSymbol, tokenDecimals, signer); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to initialize token ledger", err)
	}
	if err := escrow.Initialize(ctx); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to initialize refund escrow", err)
	}

	return nil
}

// BuyTokens is the single purchase entry point. The checks run in fixed order;
// any failure aborts the transaction, so every earlier write of the same
// invocation is discarded with it.
func (s *SmartContract) BuyTokens(ctx TransactionContext, amount string) error {
	investor, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	purchaseAmount, ok := new(big.Int).SetString(amount, 10)
	if !ok || purchaseAmount.Sign() <= 0 {
		return ErrInvalidAmount("purchase", amount)
	}

	config, err := GetSaleConfig(ctx)
	if err != nil {
		return err
	}

	whitelisted, err := IsWhitelisted(ctx, investor)
	if err != nil {
		return err
	}
	if !whitelisted {
		return fmt.Errorf("%w: %s", ErrNotWhitelisted, investor)
	}

	now, err := txTime(ctx)
	if err != nil {
		return err
	}
	if now < config.OpeningTime || now > config.ClosingTime {
		return ErrSaleNotOpen
	}

	raised, err := GetRaisedTotal(ctx)
	if err != nil {
		return err
	}
	capAmount, _ := new(big.Int).SetString(config.Cap, 10)
	if new(big.Int).Add(raised, purchaseAmount).Cmp(capAmount) > 0 {
		return ErrCapExceeded
	}

	contribution, err := GetContribution(ctx, investor)
	if err != nil {
		return err
	}
	newTotal := new(big.Int).Add(contribution, purchaseAmount)

	minCap, _ := new(big.Int).SetString(investorMinCap, 10)
	hardCap, _ := new(big.Int).SetString(investorHardCap, 10)
	if newTotal.Cmp(minCap) < 0 {
		return fmt.Errorf("%w: total %s is below %s", ErrBelowInvestorMinimum, newTotal.String(), investorMinCap)
	}
	if newTotal.Cmp(hardCap) > 0 {
		return fmt.Errorf("%w: total %s is above %s", ErrAboveInvestorMaximum, newTotal.String(), investorHardCap)
	}

	if err := SetContribution(ctx, investor, newTotal); err != nil {
		return err
	}

	stage, err := GetStage(ctx)
	if err != nil {
		return err
	}

	tokenAmount := new(big.Int).Div(purchaseAmount, config.RateFor(stage))
	if err := token.Mint(ctx, investor, tokenAmount); err != nil {
		return ErrMintingRefused(investor, err)
	}

	switch stage {
	case PreSale:
		if err := funds.Credit(ctx, config.Wallet, purchaseAmount); err != nil {
			return err
		}
	case PublicSale:
		if err := escrow.Deposit(ctx, investor, purchaseAmount); err != nil {
			return err
		}
	default:
		return ErrInvalidStage(stage.String())
	}

	raised.Add(raised, purchaseAmount)
	if err := SetRaisedTotal(ctx, raised); err != nil {
		return err
	}

	return EmitTokenPurchase(ctx, investor, purchaseAmount.String(), tokenAmount.String(), stage)
}

// SetCrowdsaleStage switches the sale stage. The stage tag and its price move
// together: the price is derived from the tag at purchase time, never stored.
func (s *SmartContract) SetCrowdsaleStage(ctx TransactionContext, stage string) error {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, config); err != nil {
		return err
	}

	var newStage Stage
	switch stage {
	case PreSale.String():
		newStage = PreSale
	case PublicSale.String():
		newStage = PublicSale
	default:
		return ErrInvalidStage(stage)
	}

	if err := SetStage(ctx, newStage); err != nil {
		return err
	}

	return EmitStageChanged(ctx, newStage, config.RateFor(newStage).String())
}

func (s *SmartContract) AddToWhitelist(ctx TransactionContext, investor string) error {
	return s.AddManyToWhitelist(ctx, []string{investor})
}

// AddManyToWhitelist admits a batch of investors. The batch is all-or-nothing:
// one invalid address rejects the whole transaction.
func (s *SmartContract) AddManyToWhitelist(ctx TransactionContext, investors []string) error {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, config); err != nil {
		return err
	}

	if len(investors) == 0 {
		return fmt.Errorf("no investors provided")
	}

	for _, investor := range investors {
		if !IsUserAddressValid(investor) {
			return fmt.Errorf("%w: %s", ErrInvalidUserAddress, investor)
		}
		if err := setWhitelisted(ctx, investor); err != nil {
			return err
		}
	}

	return EmitWhitelistAdded(ctx, investors)
}

// Finalize runs exactly once after the sale window closes. On goal success it
// distributes the reserved allocations into three vesting locks, stops
// minting, lifts the transfer pause, hands the token to the beneficiary wallet
// and closes out the escrow. On goal failure it opens the escrow for refunds.
func (s *SmartContract) Finalize(ctx TransactionContext) error {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, config); err != nil {
		return err
	}

	record, err := GetFinalization(ctx)
	if err != nil {
		return err
	}
	if record.Finalized {
		return ErrAlreadyFinalized
	}

	now, err := txTime(ctx)
	if err != nil {
		return err
	}
	if now <= config.ClosingTime {
		return ErrSaleNotClosed
	}

	raised, err := GetRaisedTotal(ctx)
	if err != nil {
		return err
	}
	goalAmount, _ := new(big.Int).SetString(config.Goal, 10)
	goalReached := raised.Cmp(goalAmount) >= 0

	if goalReached {
		lockIDs, err := s.distributeReserves(ctx, config)
		if err != nil {
			return err
		}

		if err := token.FinishMinting(ctx); err != nil {
			return NewCustomError(http.StatusInternalServerError, "failed to finish minting", err)
		}
		if err := token.Unpause(ctx); err != nil {
			return NewCustomError(http.StatusInternalServerError, "failed to unpause token", err)
		}
		if err := token.TransferOwnership(ctx, config.Wallet); err != nil {
			return NewCustomError(http.StatusInternalServerError, "failed to transfer token ownership", err)
		}
		if err := escrow.Close(ctx, config.Wallet); err != nil {
			return NewCustomError(http.StatusInternalServerError, "failed to close escrow", err)
		}

		record.LockIDs = lockIDs
	} else {
		if err := escrow.EnableRefunds(ctx); err != nil {
			return NewCustomError(http.StatusInternalServerError, "failed to enable refunds", err)
		}
	}

	record.Finalized = true
	record.GoalReached = goalReached
	if err := SetFinalization(ctx, record); err != nil {
		return err
	}

	return EmitCrowdsaleFinalized(ctx, goalReached, raised.String(), record.LockIDs)
}

// distributeReserves mints the reserved allocations into one vesting lock per
// stakeholder bucket. The sold supply represents the tokenSalePercentage share
// of the full supply; the full supply is derived by dividing before
// multiplying, and that truncation is deliberate.
func (s *SmartContract) distributeReserves(ctx TransactionContext, config *SaleConfig) ([]string, error) {
	preSaleSupply, err := token.TotalSupply(ctx)
	if err != nil {
		return nil, err
	}

	fullSupply := new(big.Int).Div(preSaleSupply, big.NewInt(tokenSalePercentage))
	fullSupply.Mul(fullSupply, big.NewInt(100))

	buckets := []struct {
		lockID      string
		beneficiary string
		percentage  int64
	}{
		{foundersLockID, config.FoundersFund, foundersPercentage},
		{foundationLockID, config.FoundationFund, foundationPercentage},
		{partnersLockID, config.PartnersFund, partnersPercentage},
	}

	lockIDs := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		if err := timelock.Create(ctx, bucket.lockID, bucket.beneficiary, config.ReleaseTime); err != nil {
			return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to create %s lock", bucket.lockID), err)
		}

		allocation := new(big.Int).Mul(fullSupply, big.NewInt(bucket.percentage))
		allocation.Div(allocation, big.NewInt(100))

		if err := token.Mint(ctx, timelock.Account(bucket.lockID), allocation); err != nil {
			return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to mint %s allocation", bucket.lockID), err)
		}

		lockIDs = append(lockIDs, bucket.lockID)
	}

	return lockIDs, nil
}

// ClaimRefund pays the signer back the amount deposited during PublicSale
// routing. It fails until refunds are enabled by a failed finalization.
func (s *SmartContract) ClaimRefund(ctx TransactionContext) error {
	investor, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	return escrow.Refund(ctx, investor)
}

// ReleaseLock releases a vesting lock's full balance to its beneficiary once
// the release time has passed.
func (s *SmartContract) ReleaseLock(ctx TransactionContext, lockID string) error {
	_, err := timelock.Release(ctx, lockID)
	return err
}
