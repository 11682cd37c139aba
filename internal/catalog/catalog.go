// Package catalog applies per-service defaults from an operator maintained
// YAML file. The ledger's newer Assignee and category columns are often
// blank for rows copied from older sheets; the catalog backfills them.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
)

// Entry describes one service in the catalog.
type Entry struct {
	Category string `yaml:"category"`
	Owner    string `yaml:"owner"`
}

// Catalog maps a service name to its defaults. Lookups are
// case-insensitive.
type Catalog struct {
	services map[string]Entry
}

type catalogFile struct {
	Services map[string]Entry `yaml:"services"`
}

// Load reads the catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes catalog YAML.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse service catalog: %w", err)
	}
	c := &Catalog{services: make(map[string]Entry, len(f.Services))}
	for name, entry := range f.Services {
		c.services[strings.ToLower(name)] = entry
	}
	return c, nil
}

// Lookup returns the entry for a service name, if any.
func (c *Catalog) Lookup(serviceName string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	entry, ok := c.services[strings.ToLower(strings.TrimSpace(serviceName))]
	return entry, ok
}

// Apply backfills empty Category and Assignee fields in place. Fields the
// ledger already populated are left alone.
func (c *Catalog) Apply(records []domain.OutageRecord) {
	if c == nil {
		return
	}
	for i := range records {
		entry, ok := c.Lookup(records[i].ServiceName)
		if !ok {
			continue
		}
		if records[i].Category == "" {
			records[i].Category = entry.Category
		}
		if records[i].Assignee == "" {
			records[i].Assignee = entry.Owner
		}
	}
}
