// Package pricing turns a sub-service pricing configuration and a customer's
// option selection into a quoted total in QAR.
//
// The same function backs the live price preview and the estimate frozen into
// a job at creation time, so both always agree for identical input.
package pricing

import "github.com/BruksfildServices01/handyman-marketplace/internal/models"

// Selection is the set of options a customer picked. An empty Size means no
// size was chosen. Names are matched against the config by exact string.
type Selection struct {
	Size      string
	Equipment []string
	Addons    []string
}

// IsEmpty reports whether nothing was supplied. A non-nil empty list still
// counts as supplied.
func (s Selection) IsEmpty() bool {
	return s.Size == "" && s.Equipment == nil && s.Addons == nil
}

// Compute adds the base price and the price of every matching option.
// Unknown names are ignored and repeated names are counted each time.
func Compute(cfg *models.PricingConfig, sel Selection) int {
	if cfg == nil {
		return 0
	}

	total := 0
	if cfg.BasePrice != nil {
		total += *cfg.BasePrice
	}

	if sel.Size != "" && len(cfg.SizeOptions) > 0 {
		for _, opt := range cfg.SizeOptions {
			if opt.Size == sel.Size {
				total += opt.Price
				break
			}
		}
	}

	total += sumMatches(cfg.EquipmentOptions, sel.Equipment)
	total += sumMatches(cfg.Addons, sel.Addons)

	return total
}

// Quote is Compute for callers that must keep "no pricing" apart from a zero
// total: it returns nil when cfg is nil.
func Quote(cfg *models.PricingConfig, sel Selection) *int {
	if cfg == nil {
		return nil
	}
	total := Compute(cfg, sel)
	return &total
}

func sumMatches(options []models.PricedOption, selected []string) int {
	sum := 0
	for _, name := range selected {
		for _, opt := range options {
			if opt.Name == name {
				sum += opt.Price
				break
			}
		}
	}
	return sum
}
