package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefctl/reef/internal/config"
)

func planFor(apps ...config.AppName) Plan {
	cfg := config.Config{Applications: apps}
	return BuildPlan(&cfg)
}

func operatorNames(p Plan) []OperatorName {
	names := make([]OperatorName, len(p.Operators))
	for i, op := range p.Operators {
		names[i] = op.Name
	}
	return names
}

func TestBuildPlan_KongAlwaysIncluded(t *testing.T) {
	plan := planFor()

	assert.Equal(t, []OperatorName{OperatorKong}, operatorNames(plan))
	assert.Empty(t, plan.Apps)
}

func TestBuildPlan_KeycloakPullsItsOperators(t *testing.T) {
	plan := planFor(config.AppKeycloak)

	assert.Equal(t, []OperatorName{OperatorKong, OperatorPostgres, OperatorKeycloak}, operatorNames(plan))
	require.Len(t, plan.Apps, 1)
	assert.Equal(t, config.AppKeycloak, plan.Apps[0].Name)
}

func TestBuildPlan_OperatorsFollowCatalogOrder(t *testing.T) {
	// mailu needs rabbitmq, keycloak needs postgres; the plan keeps the
	// catalog's installation order regardless of selection order.
	plan := planFor(config.AppMailu, config.AppKeycloak)

	assert.Equal(t, []OperatorName{
		OperatorKong, OperatorPostgres, OperatorRabbitMQ, OperatorKeycloak,
	}, operatorNames(plan))
}

func TestBuildPlan_DuplicateAppsDropped(t *testing.T) {
	plan := planFor(config.AppNextcloud, config.AppNextcloud)

	require.Len(t, plan.Apps, 1)
}

func TestBuildPlan_UnknownAppIgnored(t *testing.T) {
	// Validation rejects unknown apps upstream; the planner just skips them.
	plan := planFor(config.AppName("wordpress"))

	assert.Empty(t, plan.Apps)
	assert.Equal(t, []OperatorName{OperatorKong}, operatorNames(plan))
}

func TestPlan_SecretsFollowOperatorOrder(t *testing.T) {
	plan := planFor(config.AppKeycloak)

	specs := plan.Secrets()
	require.Len(t, specs, 3)
	assert.Equal(t, "kong-admin-auth", specs[0].Name)
	assert.Equal(t, "postgres-superuser", specs[1].Name)
	assert.Equal(t, "keycloak-initial-admin", specs[2].Name)
}

func TestOperators_HaveNamespaces(t *testing.T) {
	for _, op := range Operators() {
		assert.NotEmpty(t, op.Namespace, "operator %s missing namespace", op.Name)
		for _, s := range op.Secrets {
			assert.NotEmpty(t, s.Keys, "secret %s has no keys", s.Name)
		}
	}
}

func TestApps_CoverEveryConfigApp(t *testing.T) {
	for _, name := range config.ValidApps() {
		app, ok := AppByName(name)
		require.True(t, ok, "app %s missing from catalog", name)
		assert.NotEmpty(t, app.Subdomain)
		assert.Contains(t, app.Operators, OperatorKong, "every app routes through kong")
	}
}
