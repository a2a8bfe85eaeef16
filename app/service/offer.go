package service

import (
	"errors"
	"fmt"

	"github.com/rnjhnd/telecom-plan-visitor/app/catalog"
	"github.com/rnjhnd/telecom-plan-visitor/app/entity"
	"github.com/rnjhnd/telecom-plan-visitor/app/factory"
	"github.com/sirupsen/logrus"
)

type describeOfferRequest interface {
	GetTelcoName() string
	GetPromoPrice() float64
	GetDataAllowance() int
	GetUnliCallText() bool
	GetKind() string
}

type unliOfferCatalog interface {
	entity.UnliOfferDescriber
	Telcos() []string
}

type DescribeResult struct {
	Plan        entity.SubscriptionPlan
	Kind        entity.OfferKind
	Description string
}

type OfferService struct {
	unliCatalog  unliOfferCatalog
	usageCatalog entity.UsagePromoDescriber
	logger       logrus.FieldLogger
}

func NewOfferService(unliCatalog unliOfferCatalog, usageCatalog entity.UsagePromoDescriber) *OfferService {
	return &OfferService{
		unliCatalog:  unliCatalog,
		usageCatalog: usageCatalog,
		logger:       factory.NewModuleLogger("offer-service"),
	}
}

func (s *OfferService) Describe(req describeOfferRequest) (*DescribeResult, error) {
	kind, err := entity.ParseOfferKind(req.GetKind())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	plan := entity.NewSubscriptionPlan(req.GetTelcoName(), req.GetPromoPrice(), req.GetDataAllowance(), req.GetUnliCallText())
	description, err := plan.Accept(s.offerRequest(kind))
	if err != nil {
		l := s.logger.WithField("telco", plan.TelcoName()).WithField("kind", kind.String())
		switch {
		case errors.Is(err, catalog.ErrUnknownTelco):
			l.Debug("Telco not found in catalog")
			return nil, fmt.Errorf("%w: %q", ErrUnknownTelco, plan.TelcoName())
		case errors.Is(err, catalog.ErrUsagePromoNotImplemented), errors.Is(err, entity.ErrNoDescriber):
			l.WithError(err).Debug("Offer kind has no backing catalog")
			return nil, fmt.Errorf("%w: %s", ErrOfferNotSupported, kind)
		default:
			return nil, err
		}
	}

	return &DescribeResult{Plan: plan, Kind: kind, Description: description}, nil
}

func (s *OfferService) ListTelcos() []string {
	return s.unliCatalog.Telcos()
}

func (s *OfferService) offerRequest(kind entity.OfferKind) entity.OfferRequest {
	if kind == entity.OfferKindUsagePromo {
		return entity.UsagePromoRequest{Describer: s.usageCatalog}
	}
	return entity.UnliOfferRequest{Describer: s.unliCatalog}
}
