package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hubadmin-cli",
		Short:         "Hub admin CLI tool",
		Long:          `Inspect the console access policy and talk to a running hubadmin server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the hubadmin API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Policy commands
	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Offline policy inspection",
	}
	policyCmd.AddCommand(rolesCmd(), capabilitiesCmd(), checkCmd())

	// Remote commands
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Console session operations",
	}
	sessionCmd.AddCommand(loginCmd(), meCmd())

	root.AddCommand(policyCmd, sessionCmd)
	return root
}

func rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List console roles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-15s %-15s %s\n", "ROLE", "LABEL", "RANK")
			for _, r := range domain.Roles() {
				fmt.Printf("%-15s %-15s %d\n", r, r.Label(), r.Rank())
			}
		},
	}
}

func capabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities <role>",
		Short: "Print the capability descriptor for a role",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(policy.GetCapabilities(domain.ParseRole(args[0])))
		},
	}
}

type checkResult struct {
	Allowed bool            `json:"allowed"`
	InScope bool            `json:"inScope"`
	Actions []domain.Action `json:"actions"`
}

func checkCmd() *cobra.Command {
	var (
		role, merchant, resource, action, owner, target string
		blockedForAll                                   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decide whether a principal may act on a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := domain.Resource(resource)
			if !res.IsValid() {
				return fmt.Errorf("unknown resource %q", resource)
			}
			act := domain.Action(action)
			if !act.IsValid() {
				return fmt.Errorf("unknown action %q", action)
			}
			if owner != "" && !json.Valid([]byte(owner)) {
				return fmt.Errorf("owner must be JSON, got %q", owner)
			}

			p := domain.Principal{Role: domain.ParseRole(role), MerchantID: merchant}
			var inst *domain.Instance
			if owner != "" || blockedForAll || target != "" {
				inst = &domain.Instance{
					Kind:          res,
					Owner:         domain.ParseOwnerField(json.RawMessage(owner), blockedForAll),
					TargetRole:    domain.ParseRole(target),
					BlockedForAll: blockedForAll,
				}
			}

			out := checkResult{
				Allowed: policy.CanPerform(p, res, inst, act),
				InScope: inst == nil || policy.IsInScope(p, inst.Owner),
				Actions: policy.AllowedActions(p, res, inst),
			}
			if out.Actions == nil {
				out.Actions = []domain.Action{}
			}
			printJSON(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Principal role")
	cmd.Flags().StringVar(&merchant, "merchant", "", "Principal hub ID")
	cmd.Flags().StringVar(&resource, "resource", "", "Resource kind")
	cmd.Flags().StringVar(&action, "action", string(domain.ActionView), "Action to check")
	cmd.Flags().StringVar(&owner, "owner", "", `Ownership field as JSON, e.g. '"M1"' or '["M1","M2"]'`)
	cmd.Flags().StringVar(&target, "target-role", "", "Role of the target account")
	cmd.Flags().BoolVar(&blockedForAll, "blocked-for-all", false, "Record is a global IP block")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("resource")
	return cmd
}

func newClient() *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Token     string           `json:"token"`
				ExpiresAt time.Time        `json:"expiresAt"`
				Principal domain.Principal `json:"principal"`
			}
			resp, err := newClient().R().
				SetContext(cmd.Context()).
				SetBody(map[string]string{"email": email, "password": password}).
				SetResult(&out).
				Post("/api/v1/auth/login")
			if err != nil {
				return fmt.Errorf("login request: %w", err)
			}
			if resp.IsError() {
				return fmt.Errorf("login failed (status %d): %s", resp.StatusCode(), truncate(resp.String(), 200))
			}

			fmt.Printf("Logged in as %s (%s)\n", out.Principal.Email, out.Principal.Role)
			fmt.Printf("Expires: %s\n", out.ExpiresAt.Format(time.RFC3339))
			fmt.Println(out.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func meCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "me",
		Short: "Print the session and capabilities behind a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().
				SetContext(cmd.Context()).
				SetAuthToken(token).
				Get("/api/v1/auth/me")
			if err != nil {
				return fmt.Errorf("me request: %w", err)
			}
			if resp.IsError() {
				return fmt.Errorf("me failed (status %d): %s", resp.StatusCode(), truncate(resp.String(), 200))
			}

			var body any
			if err := json.Unmarshal(resp.Body(), &body); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			printJSON(body)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", os.Getenv("HUBADMIN_TOKEN"), "Session token (defaults to $HUBADMIN_TOKEN)")
	return cmd
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
