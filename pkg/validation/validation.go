package validation

import (
	"fmt"
	"strings"

	"laptop-inventory-api/internal/model"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateRegistration checks that every required registration field is
// present. Presence is the only check applied here: type and range checks on
// the numeric and date fields happen when the typed record is built, and
// optional fields (processor, installedRam, systemType, invoiceNumber,
// purchasedAmount) are not checked at all.
func ValidateRegistration(reg *model.LaptopRegistration) []string {
	required := []struct {
		name  string
		value string
	}{
		{"device", reg.Device},
		{"model", reg.Model},
		{"deviceBrand", reg.DeviceBrand},
		{"laptopId", reg.LaptopID},
		{"serialNumber", reg.SerialNumber},
		{"assetId", reg.AssetID},
		{"warentyMonths", reg.WarentyMonths},
		{"purchasedDate", reg.PurchasedDate},
		{"purchaseCompany", reg.PurchaseCompany},
		{"screenSize", reg.ScreenSize},
		{"resolution", reg.Resolution},
	}

	var errors []string
	for _, field := range required {
		if err := ValidateRequired(field.name, field.value); err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
