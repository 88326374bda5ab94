package domain

// ErrorKind groups ledger rejections so adapters can map them without
// knowing every code.
type ErrorKind uint8

const (
	KindAuthorization ErrorKind = iota + 1
	KindValidation
	KindState
	KindNotFound
)

// Error is a named rejection. Code is stable and safe to expose to callers.
type Error struct {
	Code string
	Kind ErrorKind
}

func (e *Error) Error() string { return e.Code }

func newError(code string, kind ErrorKind) *Error {
	return &Error{Code: code, Kind: kind}
}

var (
	ErrCallerNotOwner    = newError("CallerNotOwner", KindAuthorization)
	ErrCallerNotAdmin    = newError("CallerNotAdmin", KindAuthorization)
	ErrMintUnauthorized  = newError("MintUnauthorized", KindAuthorization)
	ErrWithdrawForbidden = newError("WithdrawForbidden", KindAuthorization)

	ErrEmptyString          = newError("EmptyString", KindValidation)
	ErrInvalidTimeGoal      = newError("InvalidTimeGoal", KindValidation)
	ErrInvalidMoneyGoal     = newError("InvalidMoneyGoal", KindValidation)
	ErrInsufficientDonation = newError("InsufficientDonation", KindValidation)
	ErrInvalidOwner         = newError("InvalidOwner", KindValidation)
	ErrInvalidAccount       = newError("InvalidAccount", KindValidation)

	ErrCampaignCompleted      = newError("CampaignCompleted", KindState)
	ErrCampaignInProgress     = newError("CampaignInProgress", KindState)
	ErrOwnerCannotBeRevoked   = newError("OwnerCannotBeRevoked", KindState)
	ErrLedgerNotInitialized   = newError("LedgerNotInitialized", KindState)
	ErrRegistryNotInitialized = newError("RegistryNotInitialized", KindState)
	ErrDeploymentMismatch     = newError("DeploymentMismatch", KindState)

	ErrCampaignNotFound         = newError("CampaignNotFound", KindNotFound)
	ErrArchivedCampaignNotFound = newError("ArchivedCampaignNotFound", KindNotFound)
	ErrTokenNotFound            = newError("TokenNotFound", KindNotFound)
)
