package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login --email <email> --password <password>",
	Short: "Obtain a bearer token for mutations",
	Long: `Exchange the site owner's credentials for a bearer token. Export it
as PORTFOLIO_TOKEN (or pass --token) for the mutating commands.

Example:
  export PORTFOLIO_TOKEN=$(admin login --email me@example.com --password secret)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{
			"email":    loginEmail,
			"password": loginPassword,
		})
		if err != nil {
			return err
		}

		httpc := &http.Client{Timeout: 15 * time.Second}
		resp, err := httpc.Post(apiURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("login request failed: %w", err)
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var env struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
			} `json:"data"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("unexpected login response: %w", err)
		}
		if !env.Success {
			if env.Error != nil {
				return fmt.Errorf("login failed: %s", env.Error.Message)
			}
			return fmt.Errorf("login failed")
		}

		fmt.Println(env.Data.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "owner email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "owner password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
