package crowdsale

type Stage int

const (
	PreSale Stage = iota
	PublicSale
)

func (s Stage) String() string {
	return [...]string{
		"PreSale",
		"PublicSale",
	}[s]
}

const (
	// Per-investor contribution bounds, in base units of the raised currency.
	investorMinCap  = "2000000000000000"
	investorHardCap = "50000000000000000000"

	// Reserved-allocation split. The four shares must sum to exactly 100.
	tokenSalePercentage  = 70
	foundersPercentage   = 10
	foundationPercentage = 10
	partnersPercentage   = 10

	tokenName     = "DApp Token"
	tokenSymbol   = "DAPP"
	tokenDecimals = 18

	foundersLockID   = "founders"
	foundationLockID = "foundation"
	partnersLockID   = "partners"

	configKey             = "crowdsale_config"
	raisedKey             = "crowdsale_raised"
	stageKey              = "crowdsale_stage"
	finalizationKey       = "crowdsale_finalization"
	contributionKeyPrefix = "contribution"
	whitelistKeyPrefix    = "whitelist"

	hexAddressRegex = `^[0-9a-fA-F]{40}$`

	// Event names.
	tokenPurchaseEvent      = "TokenPurchase"
	stageChangedEvent       = "StageChanged"
	whitelistAddedEvent     = "WhitelistAdded"
	crowdsaleFinalizedEvent = "CrowdsaleFinalized"
)
