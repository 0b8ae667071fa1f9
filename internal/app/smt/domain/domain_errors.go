package domain

import "errors"

// Domain errors as sentinel values
var (
	// Record errors
	ErrInvalidDate     = errors.New("date must be formatted YYYY-MM-DD")
	ErrEmptyItemCode   = errors.New("item code cannot be empty")
	ErrEmptyEquipID    = errors.New("equipment id cannot be empty")
	ErrEmptyAuthor     = errors.New("author cannot be empty")
	ErrUnknownSheet    = errors.New("worksheet is not editable")
	ErrRowCountChanged = errors.New("edited table must keep the stored row count")
	ErrInvalidPage     = errors.New("offset and limit must be non-negative integers")

	// Inventory errors
	ErrPartialWrite = errors.New("stock updated but history append failed")

	// Daily check errors
	ErrEmptyLine      = errors.New("line cannot be empty")
	ErrNoResults      = errors.New("at least one check result is required")
	ErrEmptyCheckItem = errors.New("check result needs an equipment id and item name")
	ErrEmptySigner    = errors.New("signer cannot be empty")
	ErrEmptySignature = errors.New("signature data cannot be empty")
	ErrInvalidBounds  = errors.New("numeric check item has min_val greater than max_val")
)
