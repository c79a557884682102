package crowdsale

import (
	"encoding/json"
	"fmt"
)

type TokenPurchaseEvent struct {
	Investor    string `json:"investor"`
	Amount      string `json:"amount"`
	TokenAmount string `json:"tokenAmount"`
	Stage       string `json:"stage"`
}

type StageChangedEvent struct {
	Stage string `json:"stage"`
	Rate  string `json:"rate"`
}

type WhitelistAddedEvent struct {
	Investors []string `json:"investors"`
}

type CrowdsaleFinalizedEvent struct {
	GoalReached bool     `json:"goalReached"`
	Raised      string   `json:"raised"`
	LockIDs     []string `json:"lockIds,omitempty"`
}

func EmitTokenPurchase(ctx TransactionContext, investor, amount, tokenAmount string, stage Stage) error {
	purchase := TokenPurchaseEvent{
		Investor:    investor,
		Amount:      amount,
		TokenAmount: tokenAmount,
		Stage:       stage.String(),
	}

	purchaseJSON, err := json.Marshal(purchase)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(tokenPurchaseEvent, purchaseJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitStageChanged(ctx TransactionContext, stage Stage, rate string) error {
	changed := StageChangedEvent{
		Stage: stage.String(),
		Rate:  rate,
	}

	changedJSON, err := json.Marshal(changed)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(stageChangedEvent, changedJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitWhitelistAdded(ctx TransactionContext, investors []string) error {
	added := WhitelistAddedEvent{
		Investors: investors,
	}

	addedJSON, err := json.Marshal(added)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(whitelistAddedEvent, addedJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitCrowdsaleFinalized(ctx TransactionContext, goalReached bool, raised string, lockIDs []string) error {
	finalized := CrowdsaleFinalizedEvent{
		GoalReached: goalReached,
		Raised:      raised,
		LockIDs:     lockIDs,
	}

	finalizedJSON, err := json.Marshal(finalized)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(crowdsaleFinalizedEvent, finalizedJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
