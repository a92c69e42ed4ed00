package engine

import (
	"github.com/stablevault/vault-server/pkg/config"
	"github.com/stablevault/vault-server/pkg/config/env"
	"github.com/stablevault/vault-server/pkg/config/memory"
	"github.com/stablevault/vault-server/pkg/config/wrapper"
	"github.com/stablevault/vault-server/pkg/usdc"
)

const (
	envConfigPrefix = "VAULT_ENGINE_"

	FixedPointScaleConfigEnvName = envConfigPrefix + "FIXED_POINT_SCALE"
	defaultFixedPointScale       = usdc.QuarksPerUsdc
)

type conf struct {
	// One whole asset token, expressed in quarks. Prices are quoted against
	// the same scale, so asset and stablecoin decimals always agree.
	fixedPointScale config.Uint64
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			fixedPointScale: env.NewUint64Config(FixedPointScaleConfigEnvName, defaultFixedPointScale),
		}
	}
}

type testOverrides struct {
	fixedPointScale uint64
}

func withManualTestConfig(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		if overrides.fixedPointScale == 0 {
			overrides.fixedPointScale = defaultFixedPointScale
		}

		return &conf{
			fixedPointScale: wrapper.NewUint64Config(
				memory.NewConfig(overrides.fixedPointScale),
				defaultFixedPointScale,
			),
		}
	}
}
