package service

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnknownTelco      = errors.New("unknown telco")
	ErrOfferNotSupported = errors.New("offer not supported")
)
