package types

import (
	"errors"
	"strings"

	"github.com/rnjhnd/telecom-plan-visitor/app/entity"
)

type DescribeOfferRequest struct {
	TelcoName     string
	PromoPrice    float64
	DataAllowance int
	UnliCallText  bool
	Kind          string
}

func NewDescribeOfferRequest(telcoName string, promoPrice float64, dataAllowance int, unliCallText bool, kind string) *DescribeOfferRequest {
	return &DescribeOfferRequest{
		TelcoName:     strings.TrimSpace(telcoName),
		PromoPrice:    promoPrice,
		DataAllowance: dataAllowance,
		UnliCallText:  unliCallText,
		Kind:          strings.TrimSpace(strings.ToLower(kind)),
	}
}

func (r *DescribeOfferRequest) GetTelcoName() string {
	return r.TelcoName
}

func (r *DescribeOfferRequest) GetPromoPrice() float64 {
	return r.PromoPrice
}

func (r *DescribeOfferRequest) GetDataAllowance() int {
	return r.DataAllowance
}

func (r *DescribeOfferRequest) GetUnliCallText() bool {
	return r.UnliCallText
}

func (r *DescribeOfferRequest) GetKind() string {
	return r.Kind
}

// Validate only checks the offer kind. Telco names are resolved by the
// catalog lookup.
func (r *DescribeOfferRequest) Validate() error {
	if r.GetKind() == "" {
		return errors.New("kind is required")
	}
	if _, err := entity.ParseOfferKind(r.GetKind()); err != nil {
		return errors.New("kind must be usage or unli")
	}
	return nil
}
