// Package platform declares the operator and application catalog of the
// GitOps platform.
//
// The catalog is fixed, declarative data: which infrastructure operators
// exist, which applications depend on them, and which cluster secrets each
// one needs. Rendering and applying the corresponding manifests is delegated
// to the GitOps tooling downstream; this package only assembles the plan
// for a validated configuration.
package platform

import "github.com/reefctl/reef/internal/config"

// OperatorName identifies an infrastructure operator.
type OperatorName string

const (
	// OperatorPostgres is the Zalando PostgreSQL operator.
	OperatorPostgres OperatorName = "postgres-operator"
	// OperatorRabbitMQ is the RabbitMQ cluster operator.
	OperatorRabbitMQ OperatorName = "rabbitmq-operator"
	// OperatorKong is the Kong ingress controller.
	OperatorKong OperatorName = "kong"
	// OperatorKeycloak is the Keycloak operator.
	OperatorKeycloak OperatorName = "keycloak-operator"
)

// Operator describes one infrastructure operator.
type Operator struct {
	Name        OperatorName
	Namespace   string
	Description string

	// Secrets lists the cluster secrets that must exist before the
	// operator is installed.
	Secrets []SecretSpec
}

// SecretSpec names a cluster secret and the keys it carries.
type SecretSpec struct {
	Name      string
	Namespace string
	Keys      []SecretKey
}

// SecretKey is a single key within a secret and how its value is produced.
type SecretKey struct {
	Name string
	Kind KeyKind
}

// KeyKind selects how a secret value is generated.
type KeyKind string

const (
	// KindPassword is a random alphanumeric password.
	KindPassword KeyKind = "password"
	// KindHexKey is a random hex-encoded key.
	KindHexKey KeyKind = "hexkey"
	// KindPasswordHash is a bcrypt hash of the "password" key in the same
	// secret.
	KindPasswordHash KeyKind = "password-hash"
)

// Operators returns the full operator catalog in installation order. Kong
// goes first so ingress exists before anything routes through it.
func Operators() []Operator {
	return []Operator{
		{
			Name:        OperatorKong,
			Namespace:   "kong",
			Description: "Ingress controller and API gateway",
			Secrets: []SecretSpec{
				{
					Name:      "kong-admin-auth",
					Namespace: "kong",
					Keys: []SecretKey{
						{Name: "password", Kind: KindPassword},
						{Name: "password_hash", Kind: KindPasswordHash},
					},
				},
			},
		},
		{
			Name:        OperatorPostgres,
			Namespace:   "postgres-operator",
			Description: "Managed PostgreSQL clusters for platform applications",
			Secrets: []SecretSpec{
				{
					Name:      "postgres-superuser",
					Namespace: "postgres-operator",
					Keys: []SecretKey{
						{Name: "password", Kind: KindPassword},
					},
				},
			},
		},
		{
			Name:        OperatorRabbitMQ,
			Namespace:   "rabbitmq-system",
			Description: "Managed RabbitMQ clusters for asynchronous messaging",
			Secrets: []SecretSpec{
				{
					Name:      "rabbitmq-default-user",
					Namespace: "rabbitmq-system",
					Keys: []SecretKey{
						{Name: "password", Kind: KindPassword},
						{Name: "erlang_cookie", Kind: KindHexKey},
					},
				},
			},
		},
		{
			Name:        OperatorKeycloak,
			Namespace:   "keycloak",
			Description: "Identity and access management",
			Secrets: []SecretSpec{
				{
					Name:      "keycloak-initial-admin",
					Namespace: "keycloak",
					Keys: []SecretKey{
						{Name: "password", Kind: KindPassword},
					},
				},
			},
		},
	}
}

// App describes one platform application.
type App struct {
	Name        config.AppName
	Subdomain   string
	Description string

	// Operators lists the infrastructure operators the app requires.
	Operators []OperatorName
}

// Apps returns the application catalog.
func Apps() []App {
	return []App{
		{
			Name:        config.AppKeycloak,
			Subdomain:   "auth",
			Description: "Single sign-on for all platform applications",
			Operators:   []OperatorName{OperatorKong, OperatorPostgres, OperatorKeycloak},
		},
		{
			Name:        config.AppMattermost,
			Subdomain:   "chat",
			Description: "Team messaging",
			Operators:   []OperatorName{OperatorKong, OperatorPostgres},
		},
		{
			Name:        config.AppNextcloud,
			Subdomain:   "cloud",
			Description: "File sharing and collaboration",
			Operators:   []OperatorName{OperatorKong, OperatorPostgres, OperatorRabbitMQ},
		},
		{
			Name:        config.AppMailu,
			Subdomain:   "mail",
			Description: "Mail server",
			Operators:   []OperatorName{OperatorKong, OperatorRabbitMQ},
		},
	}
}

// AppByName returns the catalog entry for an application name.
func AppByName(name config.AppName) (App, bool) {
	for _, app := range Apps() {
		if app.Name == name {
			return app, true
		}
	}
	return App{}, false
}

// Plan is the ordered set of operators, applications, and secrets a
// configuration requires.
type Plan struct {
	Operators []Operator
	Apps      []App
}

// Secrets returns every secret the planned operators need, in operator
// order.
func (p Plan) Secrets() []SecretSpec {
	var specs []SecretSpec
	for _, op := range p.Operators {
		specs = append(specs, op.Secrets...)
	}
	return specs
}

// BuildPlan assembles the deployment plan for a validated configuration.
// Kong is always included; everything else follows from the selected
// applications. Operator order matches the catalog, apps keep their
// selection order with duplicates dropped.
func BuildPlan(cfg *config.Config) Plan {
	needed := map[OperatorName]bool{OperatorKong: true}

	var apps []App
	seen := map[config.AppName]bool{}
	for _, name := range cfg.Applications {
		if seen[name] {
			continue
		}
		seen[name] = true

		app, ok := AppByName(name)
		if !ok {
			continue
		}
		apps = append(apps, app)
		for _, op := range app.Operators {
			needed[op] = true
		}
	}

	var operators []Operator
	for _, op := range Operators() {
		if needed[op.Name] {
			operators = append(operators, op)
		}
	}

	return Plan{Operators: operators, Apps: apps}
}
