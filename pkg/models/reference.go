package models

// Carrier is a shipping service a delivery order can be dispatched with.
type Carrier struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Package is a predefined bundle of materials with fixed contents and price.
type Package struct {
	Code     string   `yaml:"code" json:"code"`
	Name     string   `yaml:"name" json:"name"`
	Contents []string `yaml:"contents" json:"contents"`
	Price    int64    `yaml:"price" json:"price"`
}

// Reference groups the read-only lookup lists shared by both managers.
type Reference struct {
	Regions    []string  `yaml:"regions" json:"regions"`
	Categories []string  `yaml:"categories" json:"categories"`
	Carriers   []Carrier `yaml:"carriers" json:"carriers"`
	Packages   []Package `yaml:"packages" json:"packages"`
}

// FindCarrier looks up a carrier by code.
func (r Reference) FindCarrier(code string) (Carrier, bool) {
	for _, carrier := range r.Carriers {
		if carrier.Code == code {
			return carrier, true
		}
	}
	return Carrier{}, false
}

// FindPackage looks up a package by code.
func (r Reference) FindPackage(code string) (Package, bool) {
	for _, pkg := range r.Packages {
		if pkg.Code == code {
			return pkg, true
		}
	}
	return Package{}, false
}
