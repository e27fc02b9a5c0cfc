package domain

import "errors"

const (
	CodeInvalidArguments       = "INVALID_ARGUMENTS"
	CodeItemNotFound           = "ITEM_NOT_FOUND"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeOrderNotFound          = "ORDER_NOT_FOUND"
	CodeInsufficientStock      = "INSUFFICIENT_STOCK"
	CodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	CodeSelfTradeNotAllowed    = "SELF_TRADE_NOT_ALLOWED"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeUserHasOpenOrders      = "USER_HAS_OPEN_ORDERS"
	CodeItemHasOpenOrders      = "ITEM_HAS_OPEN_ORDERS"
	CodeConcurrencyConflict    = "CONCURRENCY_CONFLICT"
	CodeStoreUnavailable       = "STORE_UNAVAILABLE"
	CodeUsernameTaken          = "USERNAME_TAKEN"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"

	CodeInternal = "INTERNAL"
)

// CodedError is implemented by every error in this package.
type CodedError interface {
	error
	Code() string
}

// ErrorCode returns the stable code of the first CodedError in err's chain,
// or CodeInternal when there is none.
func ErrorCode(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return CodeInternal
}

// IsTransient reports whether err is a failure that a rerun of the whole
// transition may clear.
func IsTransient(err error) bool {
	return errors.Is(err, &ConcurrencyConflictError{}) || errors.Is(err, &StoreUnavailableError{})
}

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Code() string {
	return CodeInvalidArguments
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region ItemNotFoundError

type ItemNotFoundError struct {
	Msg string
}

func (e *ItemNotFoundError) Error() string {
	return e.Msg
}

func (e *ItemNotFoundError) Code() string {
	return CodeItemNotFound
}

func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Code() string {
	return CodeUserNotFound
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region OrderNotFoundError

type OrderNotFoundError struct {
	Msg string
}

func (e *OrderNotFoundError) Error() string {
	return e.Msg
}

func (e *OrderNotFoundError) Code() string {
	return CodeOrderNotFound
}

func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Code() string {
	return CodeInsufficientStock
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Code() string {
	return CodeInsufficientBalance
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region SelfTradeNotAllowedError

type SelfTradeNotAllowedError struct {
	Msg string
}

func (e *SelfTradeNotAllowedError) Error() string {
	return e.Msg
}

func (e *SelfTradeNotAllowedError) Code() string {
	return CodeSelfTradeNotAllowed
}

func (e *SelfTradeNotAllowedError) Is(target error) bool {
	_, ok := target.(*SelfTradeNotAllowedError)
	return ok
}

//endregion

//region InvalidStateTransitionError

type InvalidStateTransitionError struct {
	Msg string
}

func (e *InvalidStateTransitionError) Error() string {
	return e.Msg
}

func (e *InvalidStateTransitionError) Code() string {
	return CodeInvalidStateTransition
}

func (e *InvalidStateTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidStateTransitionError)
	return ok
}

//endregion

//region UserHasOpenOrdersError

type UserHasOpenOrdersError struct {
	Msg string
}

func (e *UserHasOpenOrdersError) Error() string {
	return e.Msg
}

func (e *UserHasOpenOrdersError) Code() string {
	return CodeUserHasOpenOrders
}

func (e *UserHasOpenOrdersError) Is(target error) bool {
	_, ok := target.(*UserHasOpenOrdersError)
	return ok
}

//endregion

//region ConcurrencyConflictError

type ConcurrencyConflictError struct {
	Msg string
}

func (e *ConcurrencyConflictError) Error() string {
	return e.Msg
}

func (e *ConcurrencyConflictError) Code() string {
	return CodeConcurrencyConflict
}

func (e *ConcurrencyConflictError) Is(target error) bool {
	_, ok := target.(*ConcurrencyConflictError)
	return ok
}

//endregion

//region StoreUnavailableError

type StoreUnavailableError struct {
	Msg string
}

func (e *StoreUnavailableError) Error() string {
	return e.Msg
}

func (e *StoreUnavailableError) Code() string {
	return CodeStoreUnavailable
}

func (e *StoreUnavailableError) Is(target error) bool {
	_, ok := target.(*StoreUnavailableError)
	return ok
}

//endregion

//region UsernameTakenError

type UsernameTakenError struct {
	Msg string
}

func (e *UsernameTakenError) Error() string {
	return e.Msg
}

func (e *UsernameTakenError) Code() string {
	return CodeUsernameTaken
}

func (e *UsernameTakenError) Is(target error) bool {
	_, ok := target.(*UsernameTakenError)
	return ok
}

//endregion

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Code() string {
	return CodeInvalidCredentials
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion

//region ItemHasOpenOrdersError

type ItemHasOpenOrdersError struct {
	Msg string
}

func (e *ItemHasOpenOrdersError) Error() string {
	return e.Msg
}

func (e *ItemHasOpenOrdersError) Code() string {
	return CodeItemHasOpenOrders
}

func (e *ItemHasOpenOrdersError) Is(target error) bool {
	_, ok := target.(*ItemHasOpenOrdersError)
	return ok
}

//endregion
