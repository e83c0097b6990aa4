package catalog

// SeedService is a fixture entry used to populate the catalog.
type SeedService struct {
	Name        string
	Slug        string
	SubServices []SeedSubService
}

type SeedSubService struct {
	Name    string
	Slug    string
	Pricing *SeedPricing
}

type SeedPricing struct {
	BasePrice        int
	SizeOptions      []SizeOptionSeed
	EquipmentOptions []OptionSeed
	Addons           []OptionSeed
}

type SizeOptionSeed struct {
	Size  string
	Price int
}

type OptionSeed struct {
	Name  string
	Price int
}

type SeedCategory struct {
	Name string
	Slug string
}
