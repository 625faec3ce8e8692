package validation

import (
	"testing"

	"laptop-inventory-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func validRegistration() model.LaptopRegistration {
	return model.LaptopRegistration{
		Device:          "Laptop",
		Model:           "ThinkPad T14",
		DeviceBrand:     "Lenovo",
		AssetID:         "AST-2024-001",
		LaptopID:        "LAP-001",
		SerialNumber:    "SN-123456",
		ScreenSize:      "14 inch",
		PurchasedDate:   "2024-01-15",
		Resolution:      "1920x1080",
		PurchaseCompany: "TechSupplies Ltd",
		WarentyMonths:   "12",
	}
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("device", "Laptop"))
	assert.Error(t, ValidateRequired("device", ""))
	assert.Error(t, ValidateRequired("device", "   "))
}

func TestValidateRegistration_Valid(t *testing.T) {
	reg := validRegistration()
	assert.Empty(t, ValidateRegistration(&reg))
}

func TestValidateRegistration_OptionalFieldsNotRequired(t *testing.T) {
	reg := validRegistration()
	reg.Processor = ""
	reg.InstalledRAM = ""
	reg.SystemType = ""
	reg.InvoiceNumber = ""
	reg.PurchasedAmount = ""

	assert.Empty(t, ValidateRegistration(&reg))
}

func TestValidateRegistration_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.LaptopRegistration)
		want   string
	}{
		{"device", func(r *model.LaptopRegistration) { r.Device = "" }, "device is required"},
		{"model", func(r *model.LaptopRegistration) { r.Model = "" }, "model is required"},
		{"deviceBrand", func(r *model.LaptopRegistration) { r.DeviceBrand = "" }, "deviceBrand is required"},
		{"laptopId", func(r *model.LaptopRegistration) { r.LaptopID = "" }, "laptopId is required"},
		{"serialNumber", func(r *model.LaptopRegistration) { r.SerialNumber = "" }, "serialNumber is required"},
		{"assetId", func(r *model.LaptopRegistration) { r.AssetID = "" }, "assetId is required"},
		{"warentyMonths", func(r *model.LaptopRegistration) { r.WarentyMonths = "" }, "warentyMonths is required"},
		{"purchasedDate", func(r *model.LaptopRegistration) { r.PurchasedDate = "" }, "purchasedDate is required"},
		{"purchaseCompany", func(r *model.LaptopRegistration) { r.PurchaseCompany = "" }, "purchaseCompany is required"},
		{"screenSize", func(r *model.LaptopRegistration) { r.ScreenSize = "" }, "screenSize is required"},
		{"resolution", func(r *model.LaptopRegistration) { r.Resolution = "" }, "resolution is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			errs := ValidateRegistration(&reg)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.want)
		})
	}
}

func TestValidateRegistration_AllMissing(t *testing.T) {
	reg := model.LaptopRegistration{}
	errs := ValidateRegistration(&reg)
	assert.Len(t, errs, 11)
}
