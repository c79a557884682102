package escrow

import "errors"

var (
	ErrEscrowAlreadyInitialized = errors.New("EscrowAlreadyInitialized")
	ErrEscrowNotInitialized     = errors.New("EscrowNotInitialized")
	ErrEscrowNotActive          = errors.New("EscrowNotActive")
	ErrRefundNotEnabled         = errors.New("RefundNotEnabled")
	ErrNoDeposit                = errors.New("NoDeposit")
)
