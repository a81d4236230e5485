package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefctl/reef/internal/preflight"
)

func TestBootstrap_PrintsPlan(t *testing.T) {
	withEnv(t, preflight.MapEnv{"DIGITALOCEAN_TOKEN": validToken})
	path := writeTestConfig(t)

	var err error
	output := captureOutput(func() {
		err = Bootstrap(path, false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Deployment Plan")
	assert.Contains(t, output, "kong")
	assert.Contains(t, output, "keycloak")
	assert.Contains(t, output, "https://auth.example.com")
	assert.Contains(t, output, "https://cloud.example.com")
	assert.Contains(t, output, "kong/kong-admin-auth")
}

func TestBootstrap_GatedOnPreflight(t *testing.T) {
	withEnv(t, preflight.MapEnv{})
	path := writeTestConfig(t)

	var err error
	output := captureOutput(func() {
		err = Bootstrap(path, false)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, preflight.ErrMissingCredentials)
	assert.NotContains(t, output, "Deployment Plan")
}

func TestBootstrap_JSON(t *testing.T) {
	withEnv(t, preflight.MapEnv{"DIGITALOCEAN_TOKEN": validToken})
	path := writeTestConfig(t)

	var err error
	output := captureOutput(func() {
		err = Bootstrap(path, true)
	})

	require.NoError(t, err)

	var plan planJSON
	require.NoError(t, json.Unmarshal([]byte(output), &plan))

	require.NotEmpty(t, plan.Operators)
	assert.Equal(t, "kong", plan.Operators[0].Name)
	assert.Contains(t, plan.Operators[0].Secrets, "kong/kong-admin-auth")

	names := make([]string, 0, len(plan.Apps))
	for _, app := range plan.Apps {
		names = append(names, app.Name)
	}
	assert.ElementsMatch(t, []string{"keycloak", "nextcloud"}, names)
}
