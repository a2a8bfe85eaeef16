package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/rnjhnd/telecom-plan-visitor/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ entity.UnliOfferDescriber  = (*UnliCallTextCatalog)(nil)
	_ entity.UsagePromoDescriber = (*UnimplementedUsagePromoCatalog)(nil)
)

func TestDescribeUnliOfferKnownTelcos(t *testing.T) {
	c := NewUnliCallTextCatalog()
	want := map[string]string{
		"Smart": "Does not offer any free calls or texts, and you will be charged per use.",
		"Globe": "comes with unlimited calls and texts to subscribers within their network. Calls and texts to other networks are charged extra.",
		"Dito":  "This plan includes unlimited calls and texts to all networks within the country.",
	}

	for name, text := range want {
		withFlag, err := c.DescribeUnliOffer(name, true)
		require.NoError(t, err)
		withoutFlag, err := c.DescribeUnliOffer(name, false)
		require.NoError(t, err)

		assert.Equal(t, text, withFlag, name)
		assert.Equal(t, withFlag, withoutFlag, "flag must not change the %s offer", name)
	}
}

func TestDescribeUnliOfferUnknownTelco(t *testing.T) {
	c := NewUnliCallTextCatalog()

	for _, flag := range []bool{true, false} {
		out, err := c.DescribeUnliOffer("Sun", flag)
		assert.Empty(t, out)
		assert.True(t, errors.Is(err, ErrUnknownTelco), "got %v", err)
		assert.Contains(t, err.Error(), `"Sun"`)
	}
}

func TestDescribeUnliOfferIsCaseSensitive(t *testing.T) {
	_, err := NewUnliCallTextCatalog().DescribeUnliOffer("globe", true)
	assert.ErrorIs(t, err, ErrUnknownTelco)
}

func TestDescribeUnliOfferIdempotent(t *testing.T) {
	c := NewUnliCallTextCatalog()
	first, err := c.DescribeUnliOffer("Globe", true)
	require.NoError(t, err)
	second, err := c.DescribeUnliOffer("Globe", true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanDescribeUnliOfferDito(t *testing.T) {
	plan := entity.NewSubscriptionPlan("Dito", 199, 5, true)

	out, err := plan.DescribeUnliOffer(NewUnliCallTextCatalog())
	require.NoError(t, err)
	assert.Equal(t, "This plan includes unlimited calls and texts to all networks within the country.", out)
}

func TestTelcosSorted(t *testing.T) {
	assert.Equal(t, []string{"Dito", "Globe", "Smart"}, NewUnliCallTextCatalog().Telcos())
}

func TestConcurrentReaders(t *testing.T) {
	c := NewUnliCallTextCatalog()
	names := []string{"Smart", "Globe", "Dito", "Sun"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, _ = c.DescribeUnliOffer(name, true)
			_ = c.Telcos()
		}(names[i%len(names)])
	}
	wg.Wait()

	out, err := c.DescribeUnliOffer("Smart", false)
	require.NoError(t, err)
	assert.Equal(t, "Does not offer any free calls or texts, and you will be charged per use.", out)
}
