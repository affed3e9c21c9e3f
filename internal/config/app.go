package config

const (
	defaultTopDescriptions = 10
	defaultRecentExpenses  = 5
)

type AppConfig struct {
	TopDescriptionCount int  `yaml:"top-descriptions"`
	RecentExpenseCount  int  `yaml:"recent-expenses"`
	AsyncReportsEnabled bool `yaml:"async-reports"`
}

// TopDescriptions is how many description groups a report shows before
// folding the rest into one entry.
func (s *AppConfig) TopDescriptions() int {
	return s.TopDescriptionCount
}

func (s *AppConfig) RecentExpenses() int {
	return s.RecentExpenseCount
}

func (s *AppConfig) AsyncReports() bool {
	return s.AsyncReportsEnabled
}

func (s *AppConfig) setDefaults() {
	if s.TopDescriptionCount <= 0 {
		s.TopDescriptionCount = defaultTopDescriptions
	}
	if s.RecentExpenseCount <= 0 {
		s.RecentExpenseCount = defaultRecentExpenses
	}
}
