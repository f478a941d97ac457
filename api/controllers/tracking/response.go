package tracking

import (
	trackingsvc "github.com/bahanajar/sitta-backend/internal/tracking"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

type orderResponse struct {
	trackingsvc.Record
	TotalFormatted    string `json:"total_formatted"`
	ShipDateFormatted string `json:"ship_date_formatted"`
	StatusLabel       string `json:"status_label"`
	CarrierName       string `json:"carrier_name"`
	PackageLabel      string `json:"package_label"`
}

type packageResponse struct {
	models.Package
	PriceFormatted string `json:"price_formatted"`
}

type formResponse struct {
	Form            trackingsvc.Form `json:"form"`
	SelectedPackage *packageResponse `json:"selected_package"`
	NextNumber      string           `json:"next_number"`
}

type nextNumberResponse struct {
	Number string `json:"number"`
}

func newOrderResponse(m *trackingsvc.Manager, record trackingsvc.Record, display format.Display) orderResponse {
	return orderResponse{
		Record:            record,
		TotalFormatted:    "Rp " + display.Price(record.Total),
		ShipDateFormatted: display.Date(record.ShipDate),
		StatusLabel:       record.Status.Label(),
		CarrierName:       m.CarrierName(record.CarrierCode),
		PackageLabel:      m.PackageLabel(record.PackageCode),
	}
}

func newOrderList(m *trackingsvc.Manager, display format.Display) []orderResponse {
	records := m.List()
	out := make([]orderResponse, 0, len(records))
	for _, record := range records {
		out = append(out, newOrderResponse(m, record, display))
	}
	return out
}

func newPackageResponse(pkg models.Package, display format.Display) *packageResponse {
	return &packageResponse{
		Package:        pkg,
		PriceFormatted: "Rp " + display.Price(pkg.Price),
	}
}

func newFormResponse(m *trackingsvc.Manager, display format.Display) formResponse {
	resp := formResponse{
		Form:       m.Pending(),
		NextNumber: m.NextOrderNumber(),
	}
	if pkg := m.SelectedPackage(); pkg != nil {
		resp.SelectedPackage = newPackageResponse(*pkg, display)
	}
	return resp
}
