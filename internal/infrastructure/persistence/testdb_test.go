package persistence

import (
	"testing"

	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SupplierModel{},
		&models.BankAccountModel{},
		&models.PriceCategoryModel{},
		&models.PriceAdjustmentModel{},
		&models.ProductModel{},
		&models.PurchaseModel{},
		&models.PurchaseItemModel{},
		&models.LedgerEntryModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}
