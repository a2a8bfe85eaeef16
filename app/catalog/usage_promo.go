package catalog

import "fmt"

// UnimplementedUsagePromoCatalog has no usage promo table. A concrete catalog
// can embed it and override DescribeUsage once promo tiers are defined.
type UnimplementedUsagePromoCatalog struct{}

func NewUnimplementedUsagePromoCatalog() *UnimplementedUsagePromoCatalog {
	return &UnimplementedUsagePromoCatalog{}
}

func (UnimplementedUsagePromoCatalog) DescribeUsage(telcoName string, _ float64) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrUsagePromoNotImplemented, telcoName)
}
