package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	apiURL string
	token  string
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage portfolio content against a running API",
	Long: `admin drives the editable collections of the portfolio API from the
command line.

Reads are public; create, update, delete and reorder need a bearer token
obtained with "admin login".

Examples:
  admin login --email me@example.com --password secret
  admin list certifications
  admin create certifications -f cert.yaml
  admin reorder projects 0 2`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("PORTFOLIO_API", "http://localhost:8080"), "base URL of the API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("PORTFOLIO_TOKEN"), "bearer token for mutations")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// resolve maps a resource name on the command line to its typed runner.
func resolve(name string) (runner, error) {
	factory, ok := resources[name]
	if !ok {
		names := make([]string, 0, len(resources))
		for n := range resources {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown resource %q (one of: %s)", name, strings.Join(names, ", "))
	}
	return factory()
}
