package stock

import "github.com/bahanajar/sitta-backend/pkg/models"

var testCategories = []string{"MK Wajib", "MK Pilihan", "Praktikum", "Problem-Based"}

func testItems() []models.StockItem {
	return []models.StockItem{
		{Code: "EKMA4116", Title: "Pengantar Manajemen", Category: "MK Wajib", Region: "Jakarta", Price: 65000, Quantity: 28, SafetyThreshold: 20},
		{Code: "EKMA4115", Title: "Pengantar Akuntansi", Category: "MK Wajib", Region: "Jakarta", Price: 60000, Quantity: 7, SafetyThreshold: 15},
		{Code: "BIOL4201", Title: "Biologi Umum", Category: "Praktikum", Region: "Surabaya", Price: 80000, Quantity: 12, SafetyThreshold: 10},
		{Code: "FISIP4001", Title: "Dasar-Dasar Sosiologi", Category: "MK Pilihan", Region: "Jakarta", Price: 55000, Quantity: 2, SafetyThreshold: 8},
		{Code: "PDGK4101", Title: "pendidikan Anak di SD", Category: "Problem-Based", Region: "Surabaya", Price: 72000, Quantity: 0, SafetyThreshold: 0},
		{Code: "MATA4110", Title: "Aljabar Linear", Category: "MK Wajib", Region: "Surabaya", Price: 60000, Quantity: 7, SafetyThreshold: 3},
	}
}

func codes(items []models.StockItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Code)
	}
	return out
}
