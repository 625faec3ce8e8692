package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"laptop-inventory-api/internal/model"
)

// Custom errors for better error handling
var (
	ErrLaptopNotFound   = errors.New("laptop not found")
	ErrTransactionStart = errors.New("could not start transaction")
)

// AssetRepository is an interface for recording and retrieving laptop assets.
type AssetRepository interface {
	RegisterAsset(ctx context.Context, laptop model.LaptopRecord) error
	GetLaptopByAssetID(ctx context.Context, assetID string) (*model.LaptopRecord, error)
}

// assetRepository is the concrete implementation of the AssetRepository interface.
type assetRepository struct {
	DB *sql.DB
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db *sql.DB) AssetRepository {
	return &assetRepository{DB: db}
}

// Table and column names are quoted to match the existing schema verbatim,
// misspellings included. They are part of the wire contract with the store.
const insertLaptopQuery = `
	INSERT INTO "LaptopDetails1" (
		"Device", "Model", "DeviceBrand", "AssetID", "Processor", "LaptopId",
		"InstalledRAM", "SerialNumber", "SystemType", "InvoiceNumber", "ScreenSize",
		"PurchaseDate", "Resolution", "PurchaseAmount", "PurchaseCompany",
		"WarentyMonths", "WarrentyExpieryDate", "SysDate"
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())`

const insertDeviceQuery = `
	INSERT INTO "DeviceDetails1" (
		"Device", "AssetID", "DeviceBrand", "DeviceID", "Model", "SerialNumber",
		"SystemType", "InvoiceNumber", "PurchaseDate", "PurchaseAmount",
		"PurchaseCompany", "WarentyMonths", "WarrentyExpieryDate",
		"CurrentStatus", "ConditionStatus", "SysDate"
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())`

// RegisterAsset persists a laptop record and its device record in a single
// transaction. Either both rows are written or neither is: any insert failure
// rolls the transaction back in full. A failure to start the transaction is
// reported as ErrTransactionStart and no rollback is attempted.
func (r *assetRepository) RegisterAsset(ctx context.Context, laptop model.LaptopRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionStart, err)
	}

	_, err = tx.ExecContext(ctx, insertLaptopQuery,
		laptop.Device,
		laptop.Model,
		laptop.DeviceBrand,
		laptop.AssetID,
		laptop.Processor,
		laptop.LaptopID,
		laptop.InstalledRAM,
		laptop.SerialNumber,
		laptop.SystemType,
		laptop.InvoiceNumber,
		laptop.ScreenSize,
		laptop.PurchaseDate,
		laptop.Resolution,
		laptop.PurchaseAmount,
		laptop.PurchaseCompany,
		laptop.WarentyMonths,
		laptop.WarrentyExpieryDate,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert laptop record: %w", err)
	}

	device := model.DeviceRecordFrom(laptop)
	_, err = tx.ExecContext(ctx, insertDeviceQuery,
		device.Device,
		device.AssetID,
		device.DeviceBrand,
		device.DeviceID,
		device.Model,
		device.SerialNumber,
		device.SystemType,
		device.InvoiceNumber,
		device.PurchaseDate,
		device.PurchaseAmount,
		device.PurchaseCompany,
		device.WarentyMonths,
		device.WarrentyExpieryDate,
		device.CurrentStatus,
		device.ConditionStatus,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert device record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit asset registration: %w", err)
	}

	return nil
}

// GetLaptopByAssetID retrieves a single laptop record by its asset identifier.
// The read runs outside a transaction and reflects the most recently
// committed state.
func (r *assetRepository) GetLaptopByAssetID(ctx context.Context, assetID string) (*model.LaptopRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT "Device", "AssetID", "DeviceBrand", "LaptopId", "Model", "SerialNumber",
		       "Processor", "InstalledRAM", "SystemType", "InvoiceNumber", "ScreenSize",
		       "Resolution", "PurchaseDate", "PurchaseAmount", "PurchaseCompany",
		       "WarentyMonths", "WarrentyExpieryDate", "SysDate"
		FROM "LaptopDetails1"
		WHERE "AssetID" = $1`

	row := r.DB.QueryRowContext(ctx, query, assetID)

	var l model.LaptopRecord
	if err := row.Scan(
		&l.Device, &l.AssetID, &l.DeviceBrand, &l.LaptopID, &l.Model, &l.SerialNumber,
		&l.Processor, &l.InstalledRAM, &l.SystemType, &l.InvoiceNumber, &l.ScreenSize,
		&l.Resolution, &l.PurchaseDate, &l.PurchaseAmount, &l.PurchaseCompany,
		&l.WarentyMonths, &l.WarrentyExpieryDate, &l.SysDate,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrLaptopNotFound
		}
		return nil, fmt.Errorf("failed to get laptop by asset ID: %w", err)
	}
	return &l, nil
}
