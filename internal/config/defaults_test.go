package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize_AppliesFeatureDefaults(t *testing.T) {
	out := Finalize(Config{})

	require.NotNil(t, out.Features.Email)
	require.NotNil(t, out.Features.Monitoring)
	require.NotNil(t, out.Features.Backup)
	require.NotNil(t, out.Features.SSL)

	assert.False(t, *out.Features.Email)
	assert.True(t, *out.Features.Monitoring)
	assert.True(t, *out.Features.Backup)
	assert.True(t, *out.Features.SSL)
}

func TestFinalize_KeepsExplicitFlags(t *testing.T) {
	on, off := true, false
	out := Finalize(Config{Features: Features{Email: &on, Monitoring: &off}})

	assert.True(t, *out.Features.Email)
	assert.False(t, *out.Features.Monitoring)
	assert.True(t, *out.Features.Backup, "unset flag must get its default")
}

func TestFinalize_DoesNotMutateInput(t *testing.T) {
	in := Config{
		Environments: []Environment{{Name: EnvStaging}},
		Applications: []AppName{AppMailu},
	}

	out := Finalize(in)
	out.Environments[0].Name = EnvProduction
	out.Applications[0] = AppKeycloak

	assert.Equal(t, EnvStaging, in.Environments[0].Name)
	assert.Equal(t, AppMailu, in.Applications[0])
	assert.Nil(t, in.Features.Email)
}

func TestFinalize_Idempotent(t *testing.T) {
	once := Finalize(validConfig())
	twice := Finalize(once)

	assert.Equal(t, once, twice)
}
