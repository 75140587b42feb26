package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestMergeCompanySettings_DefaultsWhenEmpty(t *testing.T) {
	merged := MergeCompanySettings(nil, CompanySettings{})

	assert.Equal(t, "Minha Empresa", merged.Name)
	assert.Equal(t, "#ffffff", merged.LoginHeaderColor)
	assert.Equal(t, "", merged.Theme)
}

func TestMergeCompanySettings_CloudWins(t *testing.T) {
	cloud := &CompanySettingsRecord{
		Name:                 "Vidraçaria Cristal",
		CNPJ:                 "12.345.678/0001-90",
		LoginHeaderColor:     "#1e40af",
		UsesCommission:       boolPtr(true),
		CommissionPercentage: floatPtr(7.5),
		LowStockThreshold:    intPtr(5),
	}
	local := CompanySettings{
		Name:                 "Nome Local",
		CNPJ:                 "outro",
		LoginHeaderColor:     "#000000",
		UsesCommission:       false,
		CommissionPercentage: 10,
		LowStockThreshold:    20,
	}

	merged := MergeCompanySettings(cloud, local)

	assert.Equal(t, "Vidraçaria Cristal", merged.Name)
	assert.Equal(t, "12.345.678/0001-90", merged.CNPJ)
	assert.Equal(t, "#1e40af", merged.LoginHeaderColor)
	assert.True(t, merged.UsesCommission)
	assert.Equal(t, 7.5, merged.CommissionPercentage)
	assert.Equal(t, 5, merged.LowStockThreshold)
}

func TestMergeCompanySettings_ExplicitCloudFalseBeatsLocalTrue(t *testing.T) {
	// A pointer to false is a real decision, not an unset column.
	cloud := &CompanySettingsRecord{
		UsesStock:      boolPtr(false),
		NotifyNewSales: boolPtr(false),
	}
	local := CompanySettings{
		UsesStock:      true,
		NotifyNewSales: true,
	}

	merged := MergeCompanySettings(cloud, local)

	assert.False(t, merged.UsesStock)
	assert.False(t, merged.NotifyNewSales)
}

func TestMergeCompanySettings_NilCloudPointerFallsBackToLocal(t *testing.T) {
	cloud := &CompanySettingsRecord{}
	local := CompanySettings{
		UsesStock:            true,
		CommissionPercentage: 12,
		Address:              "Rua das Flores, 123",
	}

	merged := MergeCompanySettings(cloud, local)

	assert.True(t, merged.UsesStock)
	assert.Equal(t, 12.0, merged.CommissionPercentage)
	assert.Equal(t, "Rua das Flores, 123", merged.Address)
}

func TestMergeCompanySettings_ThemeIsLocalOnly(t *testing.T) {
	cloud := &CompanySettingsRecord{Name: "Cloud Shop"}
	local := CompanySettings{Theme: "dark"}

	merged := MergeCompanySettings(cloud, local)

	assert.Equal(t, "dark", merged.Theme)
	assert.Equal(t, "Cloud Shop", merged.Name)
}

func TestScopeForRoles(t *testing.T) {
	assert.Equal(t, ScopeAll, ScopeForRoles([]string{"admin"}))
	assert.Equal(t, ScopeAll, ScopeForRoles([]string{"seller", "manager"}))
	assert.Equal(t, ScopeOwn, ScopeForRoles([]string{"seller"}))
	assert.Equal(t, ScopeOwn, ScopeForRoles(nil))
}
