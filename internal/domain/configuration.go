package domain

// Configuration is the top-level input file.
type Configuration struct {
	Years       int          `yaml:"years" json:"years"`
	Currency    string       `yaml:"currency,omitempty" json:"currency,omitempty"`
	Investments []Investment `yaml:"investments" json:"investments"`
}

// DefaultConfiguration returns the starter configuration: three investments over 10 years.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Years:       10,
		Currency:    "USD",
		Investments: DefaultInvestments(),
	}
}
