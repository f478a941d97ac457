package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		amount int64
		sep    string
		want   string
	}{
		{0, ".", "0"},
		{999, ".", "999"},
		{1000, ".", "1.000"},
		{65000, ".", "65.000"},
		{1250000, ".", "1.250.000"},
		{123456789, ",", "123,456,789"},
		{-45000, ".", "-45.000"},
		{-999, ".", "-999"},
		{1000, "", "1.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(tt.amount, tt.sep), "amount %d", tt.amount)
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "19 Oktober 2026", Date("2026-10-19", "id-ID"))
	assert.Equal(t, "1 Januari 2025", Date("2025-01-01", "id"))
	assert.Equal(t, "October 19, 2026", Date("2026-10-19", "en-US"))
	assert.Equal(t, "19 Oktober 2026", Date("2026-10-19", ""))
	assert.Equal(t, "not-a-date", Date("not-a-date", "id-ID"))
}

func TestMatchLocaleFallsBackToIndonesian(t *testing.T) {
	assert.Equal(t, language.Indonesian, MatchLocale("!!"))
	assert.Equal(t, language.English, MatchLocale("en-GB"))
	assert.Equal(t, language.Indonesian, MatchLocale(""))
}

func TestTimestampLayouts(t *testing.T) {
	at := time.Date(2026, time.March, 4, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "2026-03-04", ISODate(at))
	assert.Equal(t, "2026-03-04 09:05:07", Timestamp(at))
	assert.True(t, IsISODate("2026-03-04"))
	assert.False(t, IsISODate("04/03/2026"))
}

func TestDisplay(t *testing.T) {
	d := Display{Separator: ",", Locale: "en-US"}
	assert.Equal(t, "120,000", d.Price(120000))
	assert.Equal(t, "October 19, 2026", d.Date("2026-10-19"))
}

func TestDateUsesLocaleMonthNames(t *testing.T) {
	assert.Equal(t, "1 Mei 2026", Date("2026-05-01", "id-ID"))
	assert.Equal(t, "31 Desember 2025", Date(" 2025-12-31 ", "id"))
	assert.Equal(t, "May 1, 2026", Date("2026-05-01", "en"))
	assert.Equal(t, "2026-02-30", Date("2026-02-30", "id-ID"))
}
