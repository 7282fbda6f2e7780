package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrUserDuplicate covers the race window between the uniqueness
	// checks and the insert, surfaced by the table's unique constraints.
	ErrUserDuplicate = errors.New("user already exists")
)

// Conflict messages for the ordered uniqueness rules.
const (
	MsgCPFRegistered       = "cpf is already registered"
	MsgEmailRegistered     = "email is already registered"
	MsgUserNameRegistered  = "userName is already registered"
	MsgCellphoneRegistered = "cellphone is already registered"
)
