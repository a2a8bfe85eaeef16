package catalog

import (
	"fmt"
	"sort"
)

// UnliCallTextCatalog maps telco names to their unlimited call/text offer.
// The table is filled once by NewUnliCallTextCatalog and only read afterwards,
// so a single instance may be shared between goroutines.
type UnliCallTextCatalog struct {
	offers map[string]string
}

func NewUnliCallTextCatalog() *UnliCallTextCatalog {
	return &UnliCallTextCatalog{
		offers: map[string]string{
			"Smart": "Does not offer any free calls or texts, and you will be charged per use.",
			"Globe": "comes with unlimited calls and texts to subscribers within their network. Calls and texts to other networks are charged extra.",
			"Dito":  "This plan includes unlimited calls and texts to all networks within the country.",
		},
	}
}

// DescribeUnliOffer returns the offer text for telcoName. The unliCallText
// flag does not affect the result.
func (c *UnliCallTextCatalog) DescribeUnliOffer(telcoName string, _ bool) (string, error) {
	offer, ok := c.offers[telcoName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTelco, telcoName)
	}
	return offer, nil
}

func (c *UnliCallTextCatalog) Telcos() []string {
	names := make([]string, 0, len(c.offers))
	for name := range c.offers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
