package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(walletCmd(), fundCmd(), transactionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	var email, phone string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new wallet",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/", map[string]string{
				"email":        email,
				"phone_number": phone,
			})
		},
	}
	createCmd.Flags().StringVar(&email, "email", "", "Wallet owner email")
	createCmd.Flags().StringVar(&phone, "phone", "", "Wallet owner phone number")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("phone")

	getCmd := &cobra.Command{
		Use:   "get <wallet-id>",
		Short: "Get a wallet by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0], nil)
		},
	}

	var accountNumber, accountName, bank string
	linkCmd := &cobra.Command{
		Use:   "link <wallet-id>",
		Short: "Link a bank account to a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/accounts", map[string]string{
				"account_number": accountNumber,
				"account_name":   accountName,
				"bank":           bank,
			})
		},
	}
	linkCmd.Flags().StringVar(&accountNumber, "account-number", "", "Bank account number")
	linkCmd.Flags().StringVar(&accountName, "account-name", "", "Bank account holder name")
	linkCmd.Flags().StringVar(&bank, "bank", "", "Bank name")
	linkCmd.MarkFlagRequired("account-number")
	linkCmd.MarkFlagRequired("bank")

	accountsCmd := &cobra.Command{
		Use:   "accounts <wallet-id>",
		Short: "List bank accounts linked to a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0]+"/accounts", nil)
		},
	}

	cmd.AddCommand(createCmd, getCmd, linkCmd, accountsCmd)

	return cmd
}

func fundCmd() *cobra.Command {
	var accountNumber, amount, gw string
	cmd := &cobra.Command{
		Use:   "fund <wallet-id>",
		Short: "Fund a wallet through a payment gateway",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/fund", map[string]string{
				"account_number": accountNumber,
				"amount":         amount,
				"gateway":        gw,
			})
		},
	}
	cmd.Flags().StringVar(&accountNumber, "account-number", "", "Linked bank account number")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to credit")
	cmd.Flags().StringVar(&gw, "gateway", "PAYSTACK", "Payment gateway (PAYSTACK or FLUTTERWAVE)")
	cmd.MarkFlagRequired("account-number")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func transactionsCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "transactions <wallet-id>",
		Short: "List a wallet's transactions, newest first",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := fmt.Sprintf("/api/v1/wallets/%s/transactions?limit=%d&offset=%d", args[0], limit, offset)
			doRequest(http.MethodGet, path, nil)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func doRequest(method, path string, payload any) {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Println(string(respBody))
		return
	}

	printJSON(result)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
