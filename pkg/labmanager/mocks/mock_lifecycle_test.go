package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmlabs/go-labmanager/pkg/labmanager"
)

var _ labmanager.Lifecycle = (*Lifecycle)(nil)

func TestLifecycleMockDrivesConsumer(t *testing.T) {
	lm := new(Lifecycle)
	ctx := context.Background()

	lm.On("GetSingleConfigurationByName", ctx, "web-tier").
		Return(&labmanager.Configuration{ID: 42, Name: "web-tier"}, nil)
	lm.On("ConfigurationCheckout", ctx, 42, "scratch").Return(888, nil)
	lm.On("ConfigurationDeploy", ctx, 888, false, labmanager.FenceModeAllowInAndOut).Return(nil)

	cfg, err := lm.GetSingleConfigurationByName(ctx, "web-tier")
	require.NoError(t, err)

	id, err := lm.ConfigurationCheckout(ctx, cfg.ID, "scratch")
	require.NoError(t, err)
	require.Equal(t, 888, id)

	require.NoError(t, lm.ConfigurationDeploy(ctx, id, false, labmanager.FenceModeAllowInAndOut))
	lm.AssertExpectations(t)
}

func TestLifecycleMockReturnsNilConfiguration(t *testing.T) {
	lm := new(Lifecycle)
	ctx := context.Background()

	lm.On("GetSingleConfigurationByName", ctx, "missing").
		Return(nil, &labmanager.Fault{Op: "GetSingleConfigurationByName", Message: "not found"})

	cfg, err := lm.GetSingleConfigurationByName(ctx, "missing")
	require.Nil(t, cfg)
	require.Error(t, err)
	lm.AssertExpectations(t)
}
