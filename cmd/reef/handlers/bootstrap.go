package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reefctl/reef/internal/platform"
	"github.com/reefctl/reef/internal/preflight"
	"github.com/reefctl/reef/internal/ui"
)

// planJSON is the machine-readable shape of a deployment plan.
type planJSON struct {
	Operators []operatorJSON `json:"operators"`
	Apps      []appJSON      `json:"apps"`
}

type operatorJSON struct {
	Name      string   `json:"name"`
	Namespace string   `json:"namespace"`
	Secrets   []string `json:"secrets,omitempty"`
}

type appJSON struct {
	Name      string   `json:"name"`
	Host      string   `json:"host,omitempty"`
	Operators []string `json:"operators"`
}

// Bootstrap runs the full pre-deployment gate: credential preflight, schema
// validation (done by loadConfig), then the assembled operator/application
// plan. Deployment itself is delegated to the GitOps tooling consuming the
// validated configuration.
func Bootstrap(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result := preflight.Check(checkEnv, cfg)
	if !jsonOutput {
		fmt.Print(ui.RenderPreflight(result))
	}
	if err := result.Err(); err != nil {
		return err
	}

	plan := platform.BuildPlan(cfg)

	if jsonOutput {
		return printPlanJSON(plan, cfg.Project.Domain)
	}

	printPlan(plan, cfg.Project.Domain)
	return nil
}

// printPlanJSON outputs the plan as JSON.
func printPlanJSON(plan platform.Plan, domain string) error {
	out := planJSON{}

	for _, op := range plan.Operators {
		entry := operatorJSON{Name: string(op.Name), Namespace: op.Namespace}
		for _, s := range op.Secrets {
			entry.Secrets = append(entry.Secrets, s.Namespace+"/"+s.Name)
		}
		out.Operators = append(out.Operators, entry)
	}

	for _, app := range plan.Apps {
		entry := appJSON{Name: string(app.Name), Host: app.Subdomain + "." + domain}
		for _, op := range app.Operators {
			entry.Operators = append(entry.Operators, string(op))
		}
		out.Apps = append(out.Apps, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printPlan outputs the plan as formatted text.
func printPlan(plan platform.Plan, domain string) {
	fmt.Println("  Deployment Plan")
	fmt.Println("  " + strings.Repeat("─", 45))

	fmt.Println("  Operators")
	for _, op := range plan.Operators {
		fmt.Printf("    %-20s %s\n", op.Name, op.Description)
	}

	if len(plan.Apps) > 0 {
		fmt.Println()
		fmt.Println("  Applications")
		for _, app := range plan.Apps {
			fmt.Printf("    %-20s https://%s.%s\n", app.Name, app.Subdomain, domain)
		}
	}

	if specs := plan.Secrets(); len(specs) > 0 {
		fmt.Println()
		fmt.Println("  Secrets to provision (run 'reef secrets')")
		for _, s := range specs {
			fmt.Printf("    %s/%s\n", s.Namespace, s.Name)
		}
	}

	fmt.Println()
	fmt.Println("  Environment and configuration checks passed.")
	fmt.Println("  Commit the configuration and let the GitOps pipeline deploy it.")
	fmt.Println()
}
