package crowdsale

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

// TransactionContext is the slice of the Kalp SDK transaction context the
// crowdsale consumes. The concrete kalpsdk context satisfies it, and the test
// fakes implement it directly.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	DelStateWithoutKYC(key string) error
	GetTxTimestamp() (*timestamp.Timestamp, error)
	SetEvent(name string, payload []byte) error
	GetClientIdentity() cid.ClientIdentity
}

// SaleConfig is written once by Initialize and never mutated afterwards.
type SaleConfig struct {
	Admin          string `json:"admin"`
	Wallet         string `json:"wallet"`
	Cap            string `json:"cap"`
	Goal           string `json:"goal"`
	OpeningTime    uint64 `json:"openingTime"`
	ClosingTime    uint64 `json:"closingTime"`
	PreSaleRate    uint64 `json:"preSaleRate"`
	PublicSaleRate uint64 `json:"publicSaleRate"`
	FoundersFund   string `json:"foundersFund"`
	FoundationFund string `json:"foundationFund"`
	PartnersFund   string `json:"partnersFund"`
	ReleaseTime    uint64 `json:"releaseTime"`
}

// RateFor derives the active unit price from the stage tag. The price is never
// stored on its own, so a purchase can only observe a stage together with the
// price belonging to it.
func (c *SaleConfig) RateFor(stage Stage) *big.Int {
	if stage == PreSale {
		return new(big.Int).SetUint64(c.PreSaleRate)
	}
	return new(big.Int).SetUint64(c.PublicSaleRate)
}

// FinalizationRecord is written exactly once by Finalize.
type FinalizationRecord struct {
	Finalized   bool     `json:"finalized"`
	GoalReached bool     `json:"goalReached"`
	LockIDs     []string `json:"lockIds,omitempty"`
}

func GetSaleConfig(ctx TransactionContext) (*SaleConfig, error) {
	configAsBytes, err := ctx.GetState(configKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get sale config", err)
	}
	if configAsBytes == nil {
		return nil, ErrNotInitialized
	}

	var config SaleConfig
	err = json.Unmarshal(configAsBytes, &config)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale config", err)
	}

	return &config, nil
}

func SetSaleConfig(ctx TransactionContext, config *SaleConfig) error {
	configAsBytes, err := json.Marshal(config)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal sale config", err)
	}

	err = ctx.PutStateWithoutKYC(configKey, configAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set sale config", err)
	}

	return nil
}

func GetRaisedTotal(ctx TransactionContext) (*big.Int, error) {
	raisedAsBytes, err := ctx.GetState(raisedKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get raised total", err)
	}

	raised := big.NewInt(0)
	if raisedAsBytes != nil {
		_, success := raised.SetString(string(raisedAsBytes), 10)
		if !success {
			return nil, NewCustomError(http.StatusInternalServerError, "failed to parse raised total", nil)
		}
	}

	return raised, nil
}

func SetRaisedTotal(ctx TransactionContext, raised *big.Int) error {
	raisedAsBytes, err := raised.MarshalText()
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal raised total", err)
	}

	err = ctx.PutStateWithoutKYC(raisedKey, raisedAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set raised total", err)
	}

	return nil
}

func GetContribution(ctx TransactionContext, investor string) (*big.Int, error) {
	contributionKey := fmt.Sprintf("%s_%s", contributionKeyPrefix, investor)
	contributionAsBytes, err := ctx.GetState(contributionKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get contribution with Key %s", contributionKey), err)
	}

	contribution := big.NewInt(0)
	if contributionAsBytes != nil {
		_, success := contribution.SetString(string(contributionAsBytes), 10)
		if !success {
			return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse contribution for %s", investor), nil)
		}
	}

	return contribution, nil
}

func SetContribution(ctx TransactionContext, investor string, contribution *big.Int) error {
	contributionKey := fmt.Sprintf("%s_%s", contributionKeyPrefix, investor)
	contributionAsBytes, err := contribution.MarshalText()
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal contribution", err)
	}

	err = ctx.PutStateWithoutKYC(contributionKey, contributionAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set contribution for %s", investor), err)
	}

	return nil
}

func IsWhitelisted(ctx TransactionContext, investor string) (bool, error) {
	whitelistKey := fmt.Sprintf("%s_%s", whitelistKeyPrefix, investor)
	whitelistAsBytes, err := ctx.GetState(whitelistKey)
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get whitelist entry with Key %s", whitelistKey), err)
	}

	return whitelistAsBytes != nil, nil
}

func setWhitelisted(ctx TransactionContext, investor string) error {
	whitelistKey := fmt.Sprintf("%s_%s", whitelistKeyPrefix, investor)
	err := ctx.PutStateWithoutKYC(whitelistKey, []byte("true"))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set whitelist entry for %s", investor), err)
	}

	return nil
}

func GetStage(ctx TransactionContext) (Stage, error) {
	stageAsBytes, err := ctx.GetState(stageKey)
	if err != nil {
		return PreSale, NewCustomError(http.StatusInternalServerError, "failed to get stage", err)
	}
	if stageAsBytes == nil {
		return PreSale, nil
	}

	switch string(stageAsBytes) {
	case PreSale.String():
		return PreSale, nil
	case PublicSale.String():
		return PublicSale, nil
	default:
		return PreSale, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("unknown stage %s in state", string(stageAsBytes)), nil)
	}
}

func SetStage(ctx TransactionContext, stage Stage) error {
	err := ctx.PutStateWithoutKYC(stageKey, []byte(stage.String()))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set stage", err)
	}

	return nil
}

func GetFinalization(ctx TransactionContext) (*FinalizationRecord, error) {
	recordAsBytes, err := ctx.GetState(finalizationKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get finalization record", err)
	}
	if recordAsBytes == nil {
		return &FinalizationRecord{}, nil
	}

	var record FinalizationRecord
	err = json.Unmarshal(recordAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal finalization record", err)
	}

	return &record, nil
}

func SetFinalization(ctx TransactionContext, record *FinalizationRecord) error {
	recordAsBytes, err := json.Marshal(record)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal finalization record", err)
	}

	err = ctx.PutStateWithoutKYC(finalizationKey, recordAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set finalization record", err)
	}

	return nil
}
