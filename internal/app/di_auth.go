package app

import (
	"context"
	"fmt"
	"os"

	authRepository "github.com/allisson/panvault/internal/auth/repository"
	authService "github.com/allisson/panvault/internal/auth/service"
	authUseCase "github.com/allisson/panvault/internal/auth/usecase"
	"github.com/allisson/panvault/internal/metrics"
)

// auditLogRepository is an audit log store the container must close on shutdown.
type auditLogRepository interface {
	authUseCase.AuditLogRepository
	Close() error
}

// CredentialService returns the merchant credential service for AUTH_TOKEN_HASH.
func (c *Container) CredentialService() (authService.CredentialService, error) {
	var err error
	c.credentialServiceInit.Do(func() {
		c.credentialService, err = authService.NewCredentialService(c.config.AuthTokenHash)
		if err != nil {
			err = fmt.Errorf("failed to create credential service: %w", err)
			c.initErrors["credentialService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialService"]; exists {
		return nil, storedErr
	}
	return c.credentialService, nil
}

// AuditSigner returns the audit signer keyed from the vault key.
func (c *Container) AuditSigner() (authService.AuditSigner, error) {
	var err error
	c.auditSignerInit.Do(func() {
		c.auditSigner, err = c.initAuditSigner()
		if err != nil {
			c.initErrors["auditSigner"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditSigner"]; exists {
		return nil, storedErr
	}
	return c.auditSigner, nil
}

// AuditLogRepository returns the append-only audit log file at AUDIT_LOG_PATH.
func (c *Container) AuditLogRepository() (authUseCase.AuditLogRepository, error) {
	var err error
	c.auditLogRepoInit.Do(func() {
		c.auditLogRepo, err = authRepository.NewFileAuditLogRepository(c.config.AuditLogPath)
		if err != nil {
			err = fmt.Errorf("failed to open audit log: %w", err)
			c.initErrors["auditLogRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogRepo"]; exists {
		return nil, storedErr
	}
	return c.auditLogRepo, nil
}

// AuditLogUseCase returns the asynchronous audit recorder. Its writer goroutine is
// stopped by Shutdown.
func (c *Container) AuditLogUseCase() (authUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// AuditVerifyUseCase returns a verifier that reads AUDIT_LOG_PATH without opening it
// for writing, so it can run next to a live server.
func (c *Container) AuditVerifyUseCase() (authUseCase.AuditVerifyUseCase, error) {
	signer, err := c.AuditSigner()
	if err != nil {
		return nil, err
	}
	reader := authRepository.NewFileAuditLogReader(c.config.AuditLogPath)
	return authUseCase.NewAuditVerifyUseCase(reader, signer), nil
}

// initAuditSigner derives the audit signing key from the vault key.
func (c *Container) initAuditSigner() (authService.AuditSigner, error) {
	key, err := c.VaultKey()
	if err != nil {
		return nil, err
	}

	signer, err := authService.NewAuditSigner(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create audit signer: %w", err)
	}
	return signer, nil
}

// initAuditLogUseCase creates the recorder and exports its drop count when metrics
// are enabled.
func (c *Container) initAuditLogUseCase() (authUseCase.AuditLogUseCase, error) {
	repo, err := c.AuditLogRepository()
	if err != nil {
		return nil, err
	}

	signer, err := c.AuditSigner()
	if err != nil {
		return nil, err
	}

	useCase := authUseCase.NewAuditLogUseCase(repo, signer, c.config.AuditBufferSize, c.Logger())

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		if err := metrics.RegisterAuditDropCounter(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
			useCase.Dropped,
		); err != nil {
			return nil, err
		}
	}

	return useCase, nil
}

// auditLogCheck reports the audit log as ready while its file is present.
func (c *Container) auditLogCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := os.Stat(c.config.AuditLogPath)
	return err
}
