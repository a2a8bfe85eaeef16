package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoDescriber      = errors.New("no describer for offer request")
	ErrUnknownOfferKind = errors.New("unknown offer kind")
)

// UsagePromoDescriber resolves a data allowance promo message for a telco.
type UsagePromoDescriber interface {
	DescribeUsage(telcoName string, promoPrice float64) (string, error)
}

// UnliOfferDescriber resolves an unlimited call/text offer message for a telco.
type UnliOfferDescriber interface {
	DescribeUnliOffer(telcoName string, unliCallText bool) (string, error)
}

type OfferKind int

const (
	OfferKindUsagePromo OfferKind = iota + 1
	OfferKindUnliCallText
)

func (k OfferKind) String() string {
	switch k {
	case OfferKindUsagePromo:
		return "usage"
	case OfferKindUnliCallText:
		return "unli"
	default:
		return fmt.Sprintf("OfferKind(%d)", int(k))
	}
}

func ParseOfferKind(value string) (OfferKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "usage":
		return OfferKindUsagePromo, nil
	case "unli":
		return OfferKindUnliCallText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOfferKind, value)
	}
}

// OfferRequest is one of UsagePromoRequest or UnliOfferRequest.
type OfferRequest interface {
	Kind() OfferKind
}

type UsagePromoRequest struct {
	Describer UsagePromoDescriber
}

func (UsagePromoRequest) Kind() OfferKind {
	return OfferKindUsagePromo
}

type UnliOfferRequest struct {
	Describer UnliOfferDescriber
}

func (UnliOfferRequest) Kind() OfferKind {
	return OfferKindUnliCallText
}
