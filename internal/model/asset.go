package model

import (
	"fmt"
	"strconv"
	"time"
)

// Initial status values written to every new device row.
const (
	DeviceStatusInStock     = "In-Stock"
	DeviceConditionBrandNew = "Brand-New"
)

// LaptopRegistration is the POST /api/LaptopDetails payload. Field names
// match the intake form, so every value arrives as a string; numeric and
// date fields are parsed when the record is built.
type LaptopRegistration struct {
	Device          string `json:"device"`
	Model           string `json:"model"`
	DeviceBrand     string `json:"deviceBrand"`
	AssetID         string `json:"assetId"`
	Processor       string `json:"processor,omitempty"`
	LaptopID        string `json:"laptopId"`
	InstalledRAM    string `json:"installedRam,omitempty"`
	SerialNumber    string `json:"serialNumber"`
	SystemType      string `json:"systemType,omitempty"`
	InvoiceNumber   string `json:"invoiceNumber,omitempty"`
	ScreenSize      string `json:"screenSize"`
	PurchasedDate   string `json:"purchasedDate"`
	Resolution      string `json:"resolution"`
	PurchaseCompany string `json:"purchaseCompany"`
	PurchasedAmount string `json:"purchasedAmount,omitempty"`
	WarentyMonths   string `json:"warentyMonths"`
}

// LaptopRecord is a row in the LaptopDetails1 table. JSON tags follow the
// column names because the lookup endpoint returns the row as stored;
// the misspelled columns are part of the wire contract with existing data.
// Optional columns are pointers: existing rows hold NULL where the intake
// form left them blank, and new rows are written the same way.
type LaptopRecord struct {
	Device              string    `json:"Device"`
	AssetID             string    `json:"AssetID"`
	DeviceBrand         string    `json:"DeviceBrand"`
	LaptopID            string    `json:"LaptopId"`
	Model               string    `json:"Model"`
	SerialNumber        string    `json:"SerialNumber"`
	Processor           *string   `json:"Processor"`
	InstalledRAM        *string   `json:"InstalledRAM"`
	SystemType          *string   `json:"SystemType"`
	InvoiceNumber       *string   `json:"InvoiceNumber"`
	ScreenSize          string    `json:"ScreenSize"`
	Resolution          string    `json:"Resolution"`
	PurchaseDate        Date      `json:"PurchaseDate"`
	PurchaseAmount      *float64  `json:"PurchaseAmount"`
	PurchaseCompany     string    `json:"PurchaseCompany"`
	WarentyMonths       int       `json:"WarentyMonths"`
	WarrentyExpieryDate Date      `json:"WarrentyExpieryDate"`
	SysDate             time.Time `json:"SysDate"`
}

// DeviceRecord is a row in the DeviceDetails1 table. It carries the purchase
// and warranty subset of the laptop record plus the fixed initial statuses.
// DeviceID equals the laptop's LaptopId at creation.
type DeviceRecord struct {
	Device              string    `json:"Device"`
	AssetID             string    `json:"AssetID"`
	DeviceBrand         string    `json:"DeviceBrand"`
	DeviceID            string    `json:"DeviceID"`
	Model               string    `json:"Model"`
	SerialNumber        string    `json:"SerialNumber"`
	SystemType          *string   `json:"SystemType"`
	InvoiceNumber       *string   `json:"InvoiceNumber"`
	PurchaseDate        Date      `json:"PurchaseDate"`
	PurchaseAmount      *float64  `json:"PurchaseAmount"`
	PurchaseCompany     string    `json:"PurchaseCompany"`
	WarentyMonths       int       `json:"WarentyMonths"`
	WarrentyExpieryDate Date      `json:"WarrentyExpieryDate"`
	CurrentStatus       string    `json:"CurrentStatus"`
	ConditionStatus     string    `json:"ConditionStatus"`
	SysDate             time.Time `json:"SysDate"`
}

// NewLaptopRecord converts a validated registration payload into a typed
// record. Numeric and date strings are parsed here so the repository binds
// typed parameters instead of raw strings. WarrentyExpieryDate is left zero;
// the caller computes it from the purchase date and warranty duration.
func NewLaptopRecord(reg LaptopRegistration) (*LaptopRecord, error) {
	purchaseDate, err := ParseDate(reg.PurchasedDate)
	if err != nil {
		return nil, fmt.Errorf("purchasedDate: %w", err)
	}

	months, err := strconv.Atoi(reg.WarentyMonths)
	if err != nil {
		return nil, fmt.Errorf("warentyMonths: %q is not a whole number", reg.WarentyMonths)
	}

	var amount *float64
	if reg.PurchasedAmount != "" {
		parsed, err := strconv.ParseFloat(reg.PurchasedAmount, 64)
		if err != nil {
			return nil, fmt.Errorf("purchasedAmount: %q is not a number", reg.PurchasedAmount)
		}
		amount = &parsed
	}

	return &LaptopRecord{
		Device:          reg.Device,
		AssetID:         reg.AssetID,
		DeviceBrand:     reg.DeviceBrand,
		LaptopID:        reg.LaptopID,
		Model:           reg.Model,
		SerialNumber:    reg.SerialNumber,
		Processor:       optionalString(reg.Processor),
		InstalledRAM:    optionalString(reg.InstalledRAM),
		SystemType:      optionalString(reg.SystemType),
		InvoiceNumber:   optionalString(reg.InvoiceNumber),
		ScreenSize:      reg.ScreenSize,
		Resolution:      reg.Resolution,
		PurchaseDate:    purchaseDate,
		PurchaseAmount:  amount,
		PurchaseCompany: reg.PurchaseCompany,
		WarentyMonths:   months,
	}, nil
}

// optionalString maps a blank optional form field to NULL at the driver
// boundary, matching the rows already in the store.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DeviceRecordFrom derives the device row that is created alongside a laptop
// record. Both rows share the same device identifier.
func DeviceRecordFrom(laptop LaptopRecord) DeviceRecord {
	return DeviceRecord{
		Device:              laptop.Device,
		AssetID:             laptop.AssetID,
		DeviceBrand:         laptop.DeviceBrand,
		DeviceID:            laptop.LaptopID,
		Model:               laptop.Model,
		SerialNumber:        laptop.SerialNumber,
		SystemType:          laptop.SystemType,
		InvoiceNumber:       laptop.InvoiceNumber,
		PurchaseDate:        laptop.PurchaseDate,
		PurchaseAmount:      laptop.PurchaseAmount,
		PurchaseCompany:     laptop.PurchaseCompany,
		WarentyMonths:       laptop.WarentyMonths,
		WarrentyExpieryDate: laptop.WarrentyExpieryDate,
		CurrentStatus:       DeviceStatusInStock,
		ConditionStatus:     DeviceConditionBrandNew,
	}
}
