package domain

import (
	"fmt"
	"math"
)

// CurrencyPEN — код валюты по умолчанию: перуанский соль.
const CurrencyPEN = "PEN"

// MinorFromFloat переводит цену из дробных единиц (как её отдаёт внешний
// API) в минимальные единицы, округляя до ближайшего сентимо.
func MinorFromFloat(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FloatFromMinor переводит сумму из минимальных единиц в дробные для
// сериализации в запросах внешнему API.
func FloatFromMinor(minor int64) float64 {
	return float64(minor) / 100
}

// FormatMinor форматирует сумму в минимальных единицах для отображения,
// например 6070 -> "S/ 60.70".
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%sS/ %d.%02d", sign, minor/100, minor%100)
}
