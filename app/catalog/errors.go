package catalog

import "errors"

var (
	ErrUnknownTelco             = errors.New("unknown telco")
	ErrUsagePromoNotImplemented = errors.New("usage promo catalog is not implemented")
)
