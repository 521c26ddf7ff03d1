// Package repository groups the MappingStore and PurchaseLedger backends of the vault.
//
// Each subpackage implements both interfaces for one storage driver:
//
//   - bolt: bbolt B+tree file, the default driver
//   - file: JSON documents replaced atomically on every write
//   - postgresql and mysql: vault_tokens and vault_purchases tables
//   - memory: process-local maps for tests and ephemeral runs
//
// Every MappingStore.Put is put-if-absent and reports an existing token as
// tokenizationDomain.ErrTokenAlreadyExists. Get reports absence as ok=false.
package repository
