package domain

import "fmt"

var (
	ErrorInvalidAmount      = fmt.Errorf("amount must be greater than zero")
	ErrorInvalidGoal        = fmt.Errorf("goal must be greater than zero")
	ErrorDescriptionTooLong = fmt.Errorf("description must not exceed %v characters", MaxDescriptionLen)
	ErrorCategoryTooLong    = fmt.Errorf("category must not exceed %v characters", MaxCategoryLen)
	ErrorMemoTooLong        = fmt.Errorf("memo must not exceed %v characters", MaxMemoLen)

	ErrorUnauthorized = fmt.Errorf("caller is not authorized for this operation")

	ErrorRedundantStatusChange   = fmt.Errorf("jar already has the requested status")
	ErrorInsufficientFunds       = fmt.Errorf("jar balance is lower than the requested amount")
	ErrorWithdrawalLimitExceeded = fmt.Errorf("amount exceeds the per-call withdrawal limit")

	ErrorJarNotFound      = fmt.Errorf("no jar record exists at this address")
	ErrorJarAlreadyExists = fmt.Errorf("a jar record already exists at this address")

	ErrorInvalidImage = fmt.Errorf("invalid jar account image")
)
