package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/panvault/internal/config"
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	cryptoService "github.com/allisson/panvault/internal/crypto/service"
	apperrors "github.com/allisson/panvault/internal/errors"
	"github.com/allisson/panvault/internal/http"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
	tokenizationHTTP "github.com/allisson/panvault/internal/tokenization/http"
	"github.com/allisson/panvault/internal/tokenization/repository/bolt"
	"github.com/allisson/panvault/internal/tokenization/repository/file"
	"github.com/allisson/panvault/internal/tokenization/repository/memory"
	"github.com/allisson/panvault/internal/tokenization/repository/mysql"
	"github.com/allisson/panvault/internal/tokenization/repository/postgresql"
	tokenizationService "github.com/allisson/panvault/internal/tokenization/service"
	tokenizationUseCase "github.com/allisson/panvault/internal/tokenization/usecase"
)

// VaultKey returns the vault key parsed from VAULT_KEY.
func (c *Container) VaultKey() (*cryptoDomain.VaultKey, error) {
	var err error
	c.vaultKeyInit.Do(func() {
		c.vaultKey, err = cryptoDomain.ParseVaultKey(c.config.VaultKey)
		if err != nil {
			err = fmt.Errorf("failed to load vault key: %w", err)
			c.initErrors["vaultKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultKey"]; exists {
		return nil, storedErr
	}
	return c.vaultKey, nil
}

// PANCipher returns the PAN cipher built from the vault key and VAULT_ALGORITHM.
func (c *Container) PANCipher() (cryptoService.PANCipher, error) {
	var err error
	c.panCipherInit.Do(func() {
		c.panCipher, err = c.initPANCipher()
		if err != nil {
			c.initErrors["panCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["panCipher"]; exists {
		return nil, storedErr
	}
	return c.panCipher, nil
}

// TokenGenerator returns the token generator for TOKEN_FORMAT and TOKEN_LENGTH.
func (c *Container) TokenGenerator() (tokenizationService.TokenGenerator, error) {
	var err error
	c.tokenGeneratorInit.Do(func() {
		c.tokenGenerator, err = tokenizationService.NewTokenGenerator(
			tokenizationDomain.FormatType(c.config.TokenFormat),
			c.config.TokenLength,
		)
		if err != nil {
			err = fmt.Errorf("failed to create token generator: %w", err)
			c.initErrors["tokenGenerator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenGenerator"]; exists {
		return nil, storedErr
	}
	return c.tokenGenerator, nil
}

// MappingStore returns the mapping store selected by STORE_DRIVER.
func (c *Container) MappingStore() (tokenizationUseCase.MappingStore, error) {
	if err := c.initStoresOnce(); err != nil {
		return nil, err
	}
	return c.mappingStore, nil
}

// PurchaseLedger returns the purchase ledger selected by STORE_DRIVER.
func (c *Container) PurchaseLedger() (tokenizationUseCase.PurchaseLedger, error) {
	if err := c.initStoresOnce(); err != nil {
		return nil, err
	}
	return c.purchaseLedger, nil
}

// StoreReadinessCheck returns the readiness check for the selected store.
func (c *Container) StoreReadinessCheck() (http.ReadinessCheck, error) {
	if err := c.initStoresOnce(); err != nil {
		return nil, err
	}
	return c.storeCheck, nil
}

// VaultUseCase returns the vault use case, wrapped with business metrics.
func (c *Container) VaultUseCase() (tokenizationUseCase.VaultUseCase, error) {
	var err error
	c.vaultUseCaseInit.Do(func() {
		c.vaultUseCase, err = c.initVaultUseCase()
		if err != nil {
			c.initErrors["vaultUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultUseCase"]; exists {
		return nil, storedErr
	}
	return c.vaultUseCase, nil
}

// VaultHandler returns the HTTP handler for the vault routes.
func (c *Container) VaultHandler() (*tokenizationHTTP.VaultHandler, error) {
	var err error
	c.vaultHandlerInit.Do(func() {
		var useCase tokenizationUseCase.VaultUseCase
		useCase, err = c.VaultUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get vault use case for vault handler: %w", err)
			c.initErrors["vaultHandler"] = err
			return
		}
		c.vaultHandler = tokenizationHTTP.NewVaultHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultHandler"]; exists {
		return nil, storedErr
	}
	return c.vaultHandler, nil
}

// initStoresOnce builds the mapping store and ledger together, since both share one
// backend connection.
func (c *Container) initStoresOnce() error {
	var err error
	c.storesInit.Do(func() {
		err = c.initStores()
		if err != nil {
			c.initErrors["stores"] = err
		}
	})
	if err != nil {
		return err
	}
	if storedErr, exists := c.initErrors["stores"]; exists {
		return storedErr
	}
	return nil
}

// initPANCipher creates the AEAD-backed PAN cipher.
func (c *Container) initPANCipher() (cryptoService.PANCipher, error) {
	key, err := c.VaultKey()
	if err != nil {
		return nil, err
	}

	cipher, err := cryptoService.NewPANCipher(
		cryptoService.NewAEADManager(),
		key,
		cryptoDomain.Algorithm(c.config.VaultAlgorithm),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pan cipher: %w", err)
	}
	return cipher, nil
}

// initStores selects the store backend based on the configured driver.
func (c *Container) initStores() error {
	switch c.config.StoreDriver {
	case config.StoreDriverBolt:
		db, err := c.BoltDB()
		if err != nil {
			return err
		}
		c.mappingStore = bolt.NewMappingStore(db)
		c.purchaseLedger = bolt.NewPurchaseLedger(db)
		c.storeCheck = db.Ping

	case config.StoreDriverFile:
		store, err := file.NewMappingStore(c.config.TokenMapPath)
		if err != nil {
			return fmt.Errorf("failed to open token map: %w", err)
		}
		ledger, err := file.NewPurchaseLedger(c.config.PurchasesPath)
		if err != nil {
			return fmt.Errorf("failed to open purchase ledger: %w", err)
		}
		c.mappingStore = store
		c.purchaseLedger = ledger
		c.storeCheck = directoriesExist(c.config.TokenMapPath, c.config.PurchasesPath)

	case config.StoreDriverPostgres:
		db, err := c.DB()
		if err != nil {
			return err
		}
		c.mappingStore = postgresql.NewMappingStore(db)
		c.purchaseLedger = postgresql.NewPurchaseLedger(db)
		c.storeCheck = db.PingContext

	case config.StoreDriverMySQL:
		db, err := c.DB()
		if err != nil {
			return err
		}
		c.mappingStore = mysql.NewMappingStore(db)
		c.purchaseLedger = mysql.NewPurchaseLedger(db)
		c.storeCheck = db.PingContext

	case config.StoreDriverMemory:
		c.Logger().Warn("memory store selected: tokens and purchases are lost on restart")
		c.mappingStore = memory.NewMappingStore()
		c.purchaseLedger = memory.NewPurchaseLedger()
		c.storeCheck = func(context.Context) error { return nil }

	default:
		return fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
	return nil
}

// initVaultUseCase wires the generator, cipher, stores and audit sink together.
func (c *Container) initVaultUseCase() (tokenizationUseCase.VaultUseCase, error) {
	generator, err := c.TokenGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to get token generator for vault use case: %w", err)
	}

	cipher, err := c.PANCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get pan cipher for vault use case: %w", err)
	}

	store, err := c.MappingStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get mapping store for vault use case: %w", err)
	}

	ledger, err := c.PurchaseLedger()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase ledger for vault use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log for vault use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for vault use case: %w", err)
	}

	useCase := tokenizationUseCase.NewVaultUseCase(
		generator,
		cipher,
		store,
		ledger,
		auditLogUseCase,
		c.Logger(),
	)
	return tokenizationUseCase.NewVaultUseCaseWithMetrics(useCase, businessMetrics), nil
}

// directoriesExist reports the file store as ready while the directories holding its
// files are present.
func directoriesExist(paths ...string) http.ReadinessCheck {
	return func(ctx context.Context) error {
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := os.Stat(filepath.Dir(path))
			if err != nil {
				return apperrors.Wrap(apperrors.ErrStorage, err.Error())
			}
			if !info.IsDir() {
				return apperrors.Wrapf(apperrors.ErrStorage, "%s is not a directory", filepath.Dir(path))
			}
		}
		return nil
	}
}
