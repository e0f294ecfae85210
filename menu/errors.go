package menu

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidCatalog   = errors.New("invalid topic catalog")
	ErrUnknownTopic     = errors.New("topic has no action")
	ErrUnboundAction    = errors.New("action is not listed in the catalog")
)
