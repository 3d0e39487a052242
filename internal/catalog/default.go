package catalog

// GICS sector names used by the built-in catalog and exposed to HCL files.
const (
	SectorCommunicationServices = "Communication Services"
	SectorConsumerDiscretionary = "Consumer Discretionary"
	SectorConsumerStaples       = "Consumer Staples"
	SectorEnergy                = "Energy"
	SectorFinancials            = "Financials"
	SectorHealthCare            = "Health Care"
	SectorIndustrials           = "Industrials"
	SectorInformationTechnology = "Information Technology"
	SectorMaterials             = "Materials"
	SectorRealEstate            = "Real Estate"
	SectorUtilities             = "Utilities"
)

// Sectors maps snake_case identifiers to the eleven GICS sector names.
var Sectors = map[string]string{
	"communication_services": SectorCommunicationServices,
	"consumer_discretionary": SectorConsumerDiscretionary,
	"consumer_staples":       SectorConsumerStaples,
	"energy":                 SectorEnergy,
	"financials":             SectorFinancials,
	"health_care":            SectorHealthCare,
	"industrials":            SectorIndustrials,
	"information_technology": SectorInformationTechnology,
	"materials":              SectorMaterials,
	"real_estate":            SectorRealEstate,
	"utilities":              SectorUtilities,
}

var defaultEntries = []Entry{
	{Symbol: "NVDA", Industry: "Semiconductors", Sector: SectorInformationTechnology},
	{Symbol: "AMD", Industry: "Semiconductors", Sector: SectorInformationTechnology},
	{Symbol: "TSM", Industry: "Semiconductors", Sector: SectorInformationTechnology},
	{Symbol: "ASML", Industry: "Semiconductor Equipment & Materials", Sector: SectorInformationTechnology},
	{Symbol: "PLTR", Industry: "Application Software", Sector: SectorInformationTechnology},
	{Symbol: "SHOP", Industry: "Application Software", Sector: SectorInformationTechnology},
	{Symbol: "ONDS", Industry: "Wireless Communications Equipment", Sector: SectorInformationTechnology},
	{Symbol: "BBAI", Industry: "Artificial Intelligence & Analytics", Sector: SectorInformationTechnology},

	{Symbol: "AMZN", Industry: "Internet & Direct Marketing Retail", Sector: SectorConsumerDiscretionary},
	{Symbol: "TSLA", Industry: "Automobiles", Sector: SectorConsumerDiscretionary},

	{Symbol: "CEG", Industry: "Electric Utilities", Sector: SectorUtilities},
	{Symbol: "VST", Industry: "Independent Power Producers & Energy Traders", Sector: SectorUtilities},
	{Symbol: "SMR", Industry: "Independent Power Producers (Nuclear)", Sector: SectorUtilities},

	{Symbol: "TGEN", Industry: "Biotechnology", Sector: SectorHealthCare},
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return New(defaultEntries...)
}
