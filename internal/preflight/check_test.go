package preflight

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefctl/reef/internal/config"
)

// validToken is a well-formed DigitalOcean token for tests.
var validToken = "dop_v1_" + strings.Repeat("0123456789abcdef", 4)

func configWithEmail(enabled bool) *config.Config {
	cfg := config.Finalize(config.Config{
		Features: config.Features{Email: &enabled},
	})
	return &cfg
}

func TestCheck_BaseTokenOnly(t *testing.T) {
	env := MapEnv{"DIGITALOCEAN_TOKEN": validToken}

	result := Check(env, configWithEmail(false))

	assert.True(t, result.Valid())
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Warnings)
}

func TestCheck_MissingToken(t *testing.T) {
	result := Check(MapEnv{}, configWithEmail(false))

	assert.False(t, result.Valid())
	assert.Equal(t, []string{"DIGITALOCEAN_TOKEN"}, result.Missing)
}

func TestCheck_BlankCountsAsMissing(t *testing.T) {
	env := MapEnv{"DIGITALOCEAN_TOKEN": "   \t "}

	result := Check(env, configWithEmail(false))

	assert.False(t, result.Valid())
	assert.Equal(t, []string{"DIGITALOCEAN_TOKEN"}, result.Missing)
	assert.Empty(t, result.Warnings, "blank value must not also trigger a format warning")
}

func TestCheck_EmailFeatureRequiresSMTPVars(t *testing.T) {
	env := MapEnv{"DIGITALOCEAN_TOKEN": validToken}

	result := Check(env, configWithEmail(true))

	assert.False(t, result.Valid())
	assert.Equal(t, []string{"SMTP_USERNAME", "SMTP_PASSWORD"}, result.Missing)
}

func TestCheck_MissingOrderIsDeclarationOrder(t *testing.T) {
	result := Check(MapEnv{}, configWithEmail(true))

	assert.Equal(t, []string{"DIGITALOCEAN_TOKEN", "SMTP_USERNAME", "SMTP_PASSWORD"}, result.Missing)
}

func TestCheck_EmailDisabledIgnoresSMTPVars(t *testing.T) {
	// SMTP vars absent but the feature is off: not required.
	env := MapEnv{"DIGITALOCEAN_TOKEN": validToken}

	result := Check(env, configWithEmail(false))

	assert.True(t, result.Valid())
}

func TestCheck_TokenFormatWarning(t *testing.T) {
	env := MapEnv{"DIGITALOCEAN_TOKEN": "not-a-do-token"}

	result := Check(env, configWithEmail(false))

	assert.True(t, result.Valid(), "format mismatch must not invalidate the result")
	assert.Empty(t, result.Missing)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "DIGITALOCEAN_TOKEN")
}

func TestCheck_SMTPVarsHaveNoFormatCheck(t *testing.T) {
	env := MapEnv{
		"DIGITALOCEAN_TOKEN": validToken,
		"SMTP_USERNAME":      "postmaster@example.com",
		"SMTP_PASSWORD":      "hunter2",
	}

	result := Check(env, configWithEmail(true))

	assert.True(t, result.Valid())
	assert.Empty(t, result.Warnings)
}

func TestCheck_Deterministic(t *testing.T) {
	env := MapEnv{"DIGITALOCEAN_TOKEN": "bad-format"}
	cfg := configWithEmail(true)

	first := Check(env, cfg)
	second := Check(env, cfg)

	assert.Equal(t, first, second)
}

func TestResult_Err(t *testing.T) {
	ok := Result{}
	assert.NoError(t, ok.Err())

	bad := Result{Missing: []string{"DIGITALOCEAN_TOKEN", "SMTP_USERNAME"}}
	err := bad.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCredentials))
	assert.Contains(t, err.Error(), "DIGITALOCEAN_TOKEN")
	assert.Contains(t, err.Error(), "SMTP_USERNAME")
}

func TestResult_WarningsDoNotFail(t *testing.T) {
	res := Result{Warnings: []string{"something looks off"}}

	assert.True(t, res.Valid())
	assert.NoError(t, res.Err())
}

func TestResult_MarshalJSON(t *testing.T) {
	res := Result{Missing: []string{"DIGITALOCEAN_TOKEN"}}

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["valid"])
}

func TestVarByName(t *testing.T) {
	v, ok := VarByName("SMTP_USERNAME")
	require.True(t, ok)
	assert.NotEmpty(t, v.Description)
	assert.NotEmpty(t, v.Example)

	_, ok = VarByName("UNKNOWN_VAR")
	assert.False(t, ok)
}

func TestVarsFor_FixedTable(t *testing.T) {
	base := VarsFor(config.Features{})
	require.Len(t, base, 1)
	assert.Equal(t, "DIGITALOCEAN_TOKEN", base[0].Name)

	on := true
	withEmail := VarsFor(config.Features{Email: &on})
	require.Len(t, withEmail, 3)
	assert.Equal(t, "SMTP_USERNAME", withEmail[1].Name)
	assert.Equal(t, "SMTP_PASSWORD", withEmail[2].Name)
}
