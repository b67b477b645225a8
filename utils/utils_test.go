package utils_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonhardc/storefront-api/utils"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name    string
		cpf     string
		want    bool
		wantErr error
	}{
		{"known valid cpf", "52998224725", true, nil},
		{"another valid cpf", "11144477735", true, nil},
		{"single altered digit", "52998224726", false, nil},
		{"altered base digit", "62998224725", false, nil},
		{"repeated digits rejected despite checksum", "11111111111", false, nil},
		{"all zeros rejected", "00000000000", false, nil},
		{"too short", "5299822472", false, utils.ErrInvalidFormat},
		{"too long", "529982247250", false, utils.ErrInvalidFormat},
		{"non digit character", "5299822472a", false, utils.ErrInvalidFormat},
		{"formatted input is not accepted", "529.982.247-25", false, utils.ErrInvalidFormat},
		{"empty input", "", false, utils.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ValidateCPF(tt.cpf)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.5, "R$ 1234,50"},
		{0, "R$ 0,00"},
		{0.9, "R$ 0,90"},
		{19.99, "R$ 19,99"},
		{1000000, "R$ 1000000,00"}, // no thousands separator, by contract
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatPrice(decimal.NewFromFloat(tt.amount)))
		})
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", utils.FormatCPF("52998224725"))
}

func TestFormatCPFPanicsOnShortInput(t *testing.T) {
	assert.Panics(t, func() { utils.FormatCPF("123") })
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "01310-100", utils.FormatCEP("01310100"))
}

func TestFormatDate(t *testing.T) {
	t.Run("reorders day month year", func(t *testing.T) {
		got, err := utils.FormatDate("05/03/2020")
		require.NoError(t, err)
		assert.Equal(t, "2020-03-05", got)
	})

	t.Run("empty input returns the sentinel", func(t *testing.T) {
		got, err := utils.FormatDate("")
		require.NoError(t, err)
		assert.Equal(t, "0000-01-01", got)
	})

	t.Run("wrong segment count fails", func(t *testing.T) {
		_, err := utils.FormatDate("2020-03-05")
		require.ErrorIs(t, err, utils.ErrInvalidFormat)
	})
}

func TestAgeFromBirthdate(t *testing.T) {
	t.Run("thirty years ago", func(t *testing.T) {
		birth := time.Now().AddDate(-30, 0, -30)
		assert.Equal(t, 30, utils.AgeFromBirthdate(birth))
	})

	t.Run("under a year is zero", func(t *testing.T) {
		birth := time.Now().AddDate(0, 0, -200)
		assert.Equal(t, 0, utils.AgeFromBirthdate(birth))
	})

	t.Run("exactly 365 days is one", func(t *testing.T) {
		birth := time.Now().AddDate(0, 0, -365).Add(-time.Hour)
		assert.Equal(t, 1, utils.AgeFromBirthdate(birth))
	})
}
