package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/allisson/panvault/internal/tokenization/http/dto"
)

// MerchantClient is the vault API as seen by the merchant commands.
type MerchantClient interface {
	Tokenize(ctx context.Context, pan string) (string, error)
	Detokenize(ctx context.Context, token string) (string, error)
	Charge(ctx context.Context, token, amount string) (*dto.ChargeResponse, error)
	ListPurchases(ctx context.Context, token string, offset, limit int) ([]dto.PurchaseResponse, error)
}

// RunTokenize sends a PAN to the vault and prints the token it was issued.
func RunTokenize(ctx context.Context, client MerchantClient, writer io.Writer, pan, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := client.Tokenize(ctx, pan)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.TokenizeResponse{Token: token})
	}
	_, _ = fmt.Fprintf(writer, "Token generated: %s\n", token)
	return nil
}

// RunDetokenize prints the PAN stored under token.
func RunDetokenize(ctx context.Context, client MerchantClient, writer io.Writer, token, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	pan, err := client.Detokenize(ctx, token)
	if err != nil {
		return fmt.Errorf("detokenization failed: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.DetokenizeResponse{PAN: pan})
	}
	_, _ = fmt.Fprintf(writer, "PAN retrieved: %s\n", pan)
	return nil
}

// RunCharge charges amount against token and prints the receipt.
func RunCharge(ctx context.Context, client MerchantClient, writer io.Writer, token, amount, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	receipt, err := client.Charge(ctx, token, amount)
	if err != nil {
		return fmt.Errorf("charge failed: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, receipt)
	}
	_, _ = fmt.Fprintf(writer, "%s (sequence %d)\n", receipt.Message, receipt.Sequence)
	return nil
}

// RunListPurchases prints one page of the purchase ledger.
func RunListPurchases(
	ctx context.Context,
	client MerchantClient,
	writer io.Writer,
	token string,
	offset, limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	purchases, err := client.ListPurchases(ctx, token, offset, limit)
	if err != nil {
		return fmt.Errorf("listing purchases failed: %w", err)
	}

	if format == "json" {
		if purchases == nil {
			purchases = []dto.PurchaseResponse{}
		}
		return writeJSON(writer, dto.ListPurchasesResponse{Data: purchases})
	}

	if len(purchases) == 0 {
		_, _ = fmt.Fprintln(writer, "No purchases found")
		return nil
	}
	for _, p := range purchases {
		_, _ = fmt.Fprintf(writer, "%6d  %s  %-40s  %s\n",
			p.Sequence, p.CreatedAt.UTC().Format("2006-01-02 15:04:05"), p.Token, p.Amount)
	}
	return nil
}

// RunMerchantMenu runs the interactive merchant terminal until the user quits or input ends.
// A failed operation is reported and the menu is shown again.
func RunMerchantMenu(ctx context.Context, client MerchantClient, streams IOTuple) error {
	reader := bufio.NewReader(streams.Reader)
	writer := streams.Writer

	_, _ = fmt.Fprintln(writer, "PAN Vault Merchant Terminal")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "1. Tokenize PAN")
		_, _ = fmt.Fprintln(writer, "2. Detokenize Token")
		_, _ = fmt.Fprintln(writer, "3. Charge Token")
		_, _ = fmt.Fprintln(writer, "4. List Purchases")
		_, _ = fmt.Fprintln(writer, "q. Quit")

		choice, err := prompt(reader, writer, "> ")
		if err != nil {
			return endOfInput(err)
		}

		switch strings.ToLower(choice) {
		case "1":
			pan, err := prompt(reader, writer, "Enter card number (PAN): ")
			if err != nil {
				return endOfInput(err)
			}
			if pan == "" || strings.Trim(pan, "0123456789") != "" {
				_, _ = fmt.Fprintln(writer, "Invalid PAN. Must be numbers only.")
				continue
			}
			reportMenuError(writer, RunTokenize(ctx, client, writer, pan, "text"))

		case "2":
			token, err := prompt(reader, writer, "Enter token: ")
			if err != nil {
				return endOfInput(err)
			}
			reportMenuError(writer, RunDetokenize(ctx, client, writer, token, "text"))

		case "3":
			token, err := prompt(reader, writer, "Enter token: ")
			if err != nil {
				return endOfInput(err)
			}
			amount, err := prompt(reader, writer, "Enter amount (e.g. 49.99): ")
			if err != nil {
				return endOfInput(err)
			}
			reportMenuError(writer, RunCharge(ctx, client, writer, token, amount, "text"))

		case "4":
			token, err := prompt(reader, writer, "Filter by token (blank for all): ")
			if err != nil {
				return endOfInput(err)
			}
			reportMenuError(writer, RunListPurchases(ctx, client, writer, token, 0, 100, "text"))

		case "q", "quit", "exit":
			return nil

		default:
			_, _ = fmt.Fprintf(writer, "Unknown option: %q\n", choice)
		}
	}
}

func reportMenuError(writer io.Writer, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(writer, "Error: %v\n", err)
	}
}

// endOfInput treats a closed input stream as a normal quit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
