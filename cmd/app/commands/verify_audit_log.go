package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	authUseCase "github.com/allisson/panvault/internal/auth/usecase"
)

// RunVerifyAuditLog checks the HMAC signature of every audit log line.
// Returns an error when any line fails to parse or verify, so the process exits non-zero.
func RunVerifyAuditLog(
	ctx context.Context,
	verifyUseCase authUseCase.AuditVerifyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("verifying audit log")

	report, err := verifyUseCase.Verify(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify audit log: %w", err)
	}

	if format == "json" {
		if err := outputVerifyJSON(writer, report); err != nil {
			return err
		}
	} else {
		outputVerifyText(writer, report)
	}

	logger.Info("verification completed",
		slog.Int("total", report.Total),
		slog.Int("valid", report.Valid),
		slog.Int("invalid", len(report.InvalidLines)),
		slog.Int("malformed", len(report.MalformedLines)),
	)

	if !report.OK() {
		return fmt.Errorf(
			"integrity check failed: %d invalid, %d malformed line(s)",
			len(report.InvalidLines),
			len(report.MalformedLines),
		)
	}
	return nil
}

// outputVerifyText outputs the verification result in human-readable text format.
func outputVerifyText(writer io.Writer, report *authDomain.AuditVerification) {
	_, _ = fmt.Fprintf(writer, "Audit Log Integrity Verification\n")
	_, _ = fmt.Fprintf(writer, "=================================\n\n")
	_, _ = fmt.Fprintf(writer, "Total Lines:  %d\n", report.Total)
	_, _ = fmt.Fprintf(writer, "Valid:        %d\n", report.Valid)
	_, _ = fmt.Fprintf(writer, "Invalid:      %d\n", len(report.InvalidLines))
	_, _ = fmt.Fprintf(writer, "Malformed:    %d\n\n", len(report.MalformedLines))

	switch {
	case !report.OK():
		if len(report.InvalidLines) > 0 {
			_, _ = fmt.Fprintf(writer, "Invalid signature on lines: %v\n", report.InvalidLines)
		}
		if len(report.MalformedLines) > 0 {
			_, _ = fmt.Fprintf(writer, "Malformed lines: %v\n", report.MalformedLines)
		}
		_, _ = fmt.Fprintf(writer, "\nStatus: FAILED\n")
	case report.Total == 0:
		_, _ = fmt.Fprintf(writer, "Status: Audit log is empty\n")
	default:
		_, _ = fmt.Fprintf(writer, "Status: PASSED\n")
	}
}

// outputVerifyJSON outputs the verification result in JSON format for machine consumption.
func outputVerifyJSON(writer io.Writer, report *authDomain.AuditVerification) error {
	invalid := report.InvalidLines
	if invalid == nil {
		invalid = []int{}
	}
	malformed := report.MalformedLines
	if malformed == nil {
		malformed = []int{}
	}

	return writeJSON(writer, map[string]interface{}{
		"total":           report.Total,
		"valid":           report.Valid,
		"invalid_lines":   invalid,
		"malformed_lines": malformed,
		"passed":          report.OK(),
	})
}
