package models

// Member holds the profile attributes of a registered member. Members are
// keyed by full name in the directory; the profile itself does not repeat
// the name. Transactions reference members by name string only, not by id.
type Member struct {
	ID      string `json:"id" yaml:"id"`
	Group   Group  `json:"group" yaml:"group"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
	Joined  string `json:"joined" yaml:"joined"`
}

// CategoryConfig holds the mutable category registry as persisted: the
// ordered income fund names and outgoing usage type names.
type CategoryConfig struct {
	IncomeTypes   []string `yaml:"income_types"`
	OutgoingTypes []string `yaml:"outgoing_types"`
}

// DefaultCategoryConfig returns the category sets a fresh installation
// starts with.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		IncomeTypes: []string{
			"Sadaka", "Zakat", "Fitra", "Iftar", "Scholarship", "General",
		},
		OutgoingTypes: []string{
			"Medical help", "Financial help", "Karje hasana",
			"Mosque", "Dead body", "Scholarship",
		},
	}
}
