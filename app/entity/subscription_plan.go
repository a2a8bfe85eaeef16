package entity

// Subscription is the capability set a telco plan exposes to offer lookups.
type Subscription interface {
	TelcoName() string
	PromoPrice() float64
	DataAllowance() int
	UnliCallText() bool
	DescribeUsage(d UsagePromoDescriber) (string, error)
	DescribeUnliOffer(d UnliOfferDescriber) (string, error)
	Accept(req OfferRequest) (string, error)
}

// SubscriptionPlan is an immutable telco plan. All methods use value
// receivers so a plan cannot be changed after construction.
type SubscriptionPlan struct {
	telcoName     string
	promoPrice    float64
	dataAllowance int
	unliCallText  bool
}

var _ Subscription = SubscriptionPlan{}

func NewSubscriptionPlan(telcoName string, promoPrice float64, dataAllowance int, unliCallText bool) SubscriptionPlan {
	return SubscriptionPlan{
		telcoName:     telcoName,
		promoPrice:    promoPrice,
		dataAllowance: dataAllowance,
		unliCallText:  unliCallText,
	}
}

func (p SubscriptionPlan) TelcoName() string {
	return p.telcoName
}

func (p SubscriptionPlan) PromoPrice() float64 {
	return p.promoPrice
}

func (p SubscriptionPlan) DataAllowance() int {
	return p.dataAllowance
}

func (p SubscriptionPlan) UnliCallText() bool {
	return p.unliCallText
}

// DescribeUsage forwards the telco name and promo price to d and returns its
// result unchanged.
func (p SubscriptionPlan) DescribeUsage(d UsagePromoDescriber) (string, error) {
	if d == nil {
		return "", ErrNoDescriber
	}
	return d.DescribeUsage(p.telcoName, p.promoPrice)
}

// DescribeUnliOffer forwards the telco name and unli flag to d and returns its
// result unchanged.
func (p SubscriptionPlan) DescribeUnliOffer(d UnliOfferDescriber) (string, error) {
	if d == nil {
		return "", ErrNoDescriber
	}
	return d.DescribeUnliOffer(p.telcoName, p.unliCallText)
}

// Accept dispatches req to the describe operation matching its kind.
func (p SubscriptionPlan) Accept(req OfferRequest) (string, error) {
	switch r := req.(type) {
	case UsagePromoRequest:
		return p.DescribeUsage(r.Describer)
	case UnliOfferRequest:
		return p.DescribeUnliOffer(r.Describer)
	default:
		return "", ErrNoDescriber
	}
}
