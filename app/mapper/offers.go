package mapper

import (
	"github.com/rnjhnd/telecom-plan-visitor/app/dto"
	"github.com/rnjhnd/telecom-plan-visitor/app/entity"
)

func OfferDescriptionToDTO(plan entity.Subscription, kind entity.OfferKind, description string) *dto.OfferDescriptionResponse {
	if plan == nil {
		return nil
	}

	return &dto.OfferDescriptionResponse{
		TelcoName:     plan.TelcoName(),
		Kind:          kind.String(),
		PromoPrice:    plan.PromoPrice(),
		DataAllowance: plan.DataAllowance(),
		UnliCallText:  plan.UnliCallText(),
		Description:   description,
	}
}

func TelcosToDTO(names []string) *dto.ListTelcosResponse {
	result := make([]string, 0, len(names))
	result = append(result, names...)
	return &dto.ListTelcosResponse{Telcos: result}
}
