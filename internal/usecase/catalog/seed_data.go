package catalog

import domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"

// DefaultServices is the development catalog. Only three cleaning
// sub-services carry pricing.
var DefaultServices = []domain.SeedService{
	{
		Name: "Cleaning",
		Slug: "cleaning",
		SubServices: []domain.SeedSubService{
			{Name: "For rental hosts only", Slug: "rental-hosts-only"},
			{Name: "Hourly cleaning", Slug: "hourly-cleaning", Pricing: hourlyCleaningPricing},
			{Name: "Cleaning standard", Slug: "cleaning-standard", Pricing: cleaningStandardPricing},
			{Name: "Deep cleaning", Slug: "deep-cleaning", Pricing: deepCleaningPricing},
			{Name: "After renovations", Slug: "after-renovations"},
			{Name: "Window cleaning", Slug: "window-cleaning"},
			{Name: "Ironing", Slug: "ironing"},
			{Name: "Waiter", Slug: "waiter"},
			{Name: "Entrance cleaning", Slug: "entrance-cleaning"},
		},
	},
	{
		Name: "Plumbing",
		Slug: "plumbing",
		SubServices: []domain.SeedSubService{
			{Name: "Pipe repair", Slug: "pipe-repair"},
			{Name: "Leak fixing", Slug: "leak-fixing"},
			{Name: "Installation", Slug: "installation"},
			{Name: "Drain cleaning", Slug: "drain-cleaning"},
		},
	},
	{
		Name: "Heating & Cooling",
		Slug: "heating-cooling",
		SubServices: []domain.SeedSubService{
			{Name: "AC installation", Slug: "ac-installation"},
			{Name: "AC repair", Slug: "ac-repair"},
			{Name: "AC maintenance", Slug: "ac-maintenance"},
			{Name: "Heating system", Slug: "heating-system"},
		},
	},
	{
		Name: "Universal Handyman",
		Slug: "universal-handyman",
		SubServices: []domain.SeedSubService{
			{Name: "General repairs", Slug: "general-repairs"},
			{Name: "Assembly", Slug: "assembly"},
			{Name: "Mounting", Slug: "mounting"},
			{Name: "Minor fixes", Slug: "minor-fixes"},
		},
	},
	{
		Name: "Appliance",
		Slug: "appliance",
		SubServices: []domain.SeedSubService{
			{Name: "Installation", Slug: "installation"},
			{Name: "Repair", Slug: "repair"},
			{Name: "Maintenance", Slug: "maintenance"},
		},
	},
	{
		Name: "Electricity",
		Slug: "electricity",
		SubServices: []domain.SeedSubService{
			{Name: "Wiring", Slug: "wiring"},
			{Name: "Outlet installation", Slug: "outlet-installation"},
			{Name: "Light fixture", Slug: "light-fixture"},
			{Name: "Electrical repair", Slug: "electrical-repair"},
		},
	},
	{
		Name: "Doors & Locks",
		Slug: "doors-locks",
		SubServices: []domain.SeedSubService{
			{Name: "Lock installation", Slug: "lock-installation"},
			{Name: "Lock repair", Slug: "lock-repair"},
			{Name: "Door installation", Slug: "door-installation"},
			{Name: "Door repair", Slug: "door-repair"},
		},
	},
	{
		Name: "Furniture",
		Slug: "furniture",
		SubServices: []domain.SeedSubService{
			{Name: "Assembly", Slug: "assembly"},
			{Name: "Disassembly", Slug: "disassembly"},
			{Name: "Moving", Slug: "moving"},
			{Name: "Repair", Slug: "repair"},
		},
	},
	{
		Name: "Chemical Cleaning",
		Slug: "chemical-cleaning",
		SubServices: []domain.SeedSubService{
			{Name: "Carpet cleaning", Slug: "carpet-cleaning"},
			{Name: "Upholstery cleaning", Slug: "upholstery-cleaning"},
			{Name: "Deep sanitization", Slug: "deep-sanitization"},
		},
	},
	{
		Name: "IT Services",
		Slug: "it-services",
		SubServices: []domain.SeedSubService{
			{Name: "Computer setup", Slug: "computer-setup"},
			{Name: "Network installation", Slug: "network-installation"},
			{Name: "Smart home setup", Slug: "smart-home-setup"},
			{Name: "IT troubleshooting", Slug: "it-troubleshooting"},
		},
	},
	{
		Name: "Heavy Lifting & Loading",
		Slug: "heavy-lifting-loading",
		SubServices: []domain.SeedSubService{
			{Name: "Moving", Slug: "moving"},
			{Name: "Loading", Slug: "loading"},
			{Name: "Unloading", Slug: "unloading"},
			{Name: "Heavy item transport", Slug: "heavy-item-transport"},
		},
	},
}

var bringOwnEquipment = []domain.OptionSeed{
	{Name: "Bring own equipment", Price: 30},
}

var cleaningStandardPricing = &domain.SeedPricing{
	BasePrice: 100,
	SizeOptions: []domain.SizeOptionSeed{
		{Size: "40m²", Price: 0},
		{Size: "60m²", Price: 50},
		{Size: "80m²", Price: 100},
		{Size: "100m²+", Price: 150},
	},
	EquipmentOptions: bringOwnEquipment,
	Addons: []domain.OptionSeed{
		{Name: "Curtain cleaning", Price: 50},
		{Name: "Inside cabinets", Price: 30},
		{Name: "Inside fridge", Price: 40},
	},
}

var deepCleaningPricing = &domain.SeedPricing{
	BasePrice: 200,
	SizeOptions: []domain.SizeOptionSeed{
		{Size: "40m²", Price: 0},
		{Size: "60m²", Price: 80},
		{Size: "80m²", Price: 150},
		{Size: "100m²+", Price: 250},
	},
	EquipmentOptions: bringOwnEquipment,
	Addons: []domain.OptionSeed{
		{Name: "Curtain cleaning", Price: 50},
		{Name: "Inside cabinets", Price: 30},
		{Name: "Inside fridge", Price: 40},
		{Name: "Window cleaning", Price: 60},
	},
}

var hourlyCleaningPricing = &domain.SeedPricing{
	BasePrice:        50,
	SizeOptions:      []domain.SizeOptionSeed{},
	EquipmentOptions: bringOwnEquipment,
	Addons: []domain.OptionSeed{
		{Name: "Curtain cleaning", Price: 50},
	},
}

var DefaultCategories = []domain.SeedCategory{
	{Name: "Plumbing", Slug: "plumbing"},
	{Name: "Electricity", Slug: "electricity"},
	{Name: "AC & Cooling", Slug: "ac-cooling"},
	{Name: "Installations", Slug: "installations"},
	{Name: "Painting", Slug: "painting"},
	{Name: "Cleaning", Slug: "cleaning"},
}
