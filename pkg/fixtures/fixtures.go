// Package fixtures loads the reference data and seed collections the managers
// start from. The dataset is read-only once loaded.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bahanajar/sitta-backend/pkg/models"
)

//go:embed data.yaml
var embedded []byte

var orderNumberPattern = regexp.MustCompile(`^DO\d{4}-\d+$`)

// Dataset is the full feed: lookup lists plus the initial stock and tracking state.
type Dataset struct {
	models.Reference `yaml:",inline"`

	Stock    []models.StockItem              `yaml:"stock"`
	Tracking map[string]models.DeliveryOrder `yaml:"tracking"`
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	return Parse(embedded)
}

// Load reads a dataset from path, or the embedded default when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if ds.Tracking == nil {
		ds.Tracking = map[string]models.DeliveryOrder{}
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (d *Dataset) validate() error {
	codes := make(map[string]struct{}, len(d.Stock))
	for i, item := range d.Stock {
		if item.Code == "" {
			return fmt.Errorf("stock[%d]: code is required", i)
		}
		if _, dup := codes[item.Code]; dup {
			return fmt.Errorf("stock[%d]: duplicate code %q", i, item.Code)
		}
		codes[item.Code] = struct{}{}
	}

	carriers := make(map[string]struct{}, len(d.Carriers))
	for _, carrier := range d.Carriers {
		if _, dup := carriers[carrier.Code]; dup {
			return fmt.Errorf("duplicate carrier code %q", carrier.Code)
		}
		carriers[carrier.Code] = struct{}{}
	}

	packages := make(map[string]struct{}, len(d.Packages))
	for _, pkg := range d.Packages {
		if _, dup := packages[pkg.Code]; dup {
			return fmt.Errorf("duplicate package code %q", pkg.Code)
		}
		packages[pkg.Code] = struct{}{}
	}

	for number, order := range d.Tracking {
		if !orderNumberPattern.MatchString(number) {
			return fmt.Errorf("tracking: malformed order number %q", number)
		}
		if !order.Status.IsValid() {
			return fmt.Errorf("tracking %s: invalid status %q", number, order.Status)
		}
	}
	return nil
}
