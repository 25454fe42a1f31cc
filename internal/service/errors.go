package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a record is missing fields the
	// operation cannot work without.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPasscode is returned by VerifyPasscode helpers when a caller
	// requires a positive match rather than a boolean answer.
	ErrWrongPasscode = errors.New("wrong passcode")

	// ErrNoPasscodeSet is returned when a passcode operation targets a
	// profile without a stored passcode.
	ErrNoPasscodeSet = errors.New("no passcode set")

	// ErrCapsuleLocked is returned when a reader asks for the content of a
	// time capsule before its unlock date.
	ErrCapsuleLocked = errors.New("capsule is locked until its unlock date")
)
