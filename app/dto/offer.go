package dto

type OfferDescriptionResponse struct {
	TelcoName     string  `json:"telco_name"`
	Kind          string  `json:"kind"`
	PromoPrice    float64 `json:"promo_price"`
	DataAllowance int     `json:"data_allowance"`
	UnliCallText  bool    `json:"unli_call_text"`
	Description   string  `json:"description"`
}

type ListTelcosResponse struct {
	Telcos []string `json:"telcos"`
}
