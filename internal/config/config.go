package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the per-deployment configuration: everything institution-specific
// (slot table, session length, load thresholds, calendar settings) lives here
// rather than in code so a different institution only swaps this file.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Timetable TimetableConfig `yaml:"timetable"`
	Workload  WorkloadConfig  `yaml:"workload"`
	Calendar  CalendarConfig  `yaml:"calendar"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type CatalogConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
}

// TimetableConfig is the institution's base timetable: ordered day names and
// period rows, each row carrying a time label and one slot code per day.
type TimetableConfig struct {
	Days []string    `yaml:"days"`
	Rows []RowConfig `yaml:"rows"`
}

type RowConfig struct {
	Time  string   `yaml:"time"`
	Codes []string `yaml:"codes"`
}

type WorkloadConfig struct {
	SessionHours float64 `yaml:"session_hours"`
	LightBelow   float64 `yaml:"light_below"`
	BalancedUpTo float64 `yaml:"balanced_up_to"`
}

type CalendarConfig struct {
	Timezone  string `yaml:"timezone"`
	WeekStart string `yaml:"week_start"` // YYYYMMDD, a Monday
	Until     string `yaml:"until"`      // YYYYMMDD
	ProdID    string `yaml:"prod_id"`
	Filename  string `yaml:"filename"`
	Policy    string `yaml:"policy"` // "all" or "first"
}

// Load reads a YAML config file and fills in reference defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Timetable.Days) == 0 || len(c.Timetable.Rows) == 0 {
		return fmt.Errorf("config: timetable needs at least one day and one row")
	}
	for i, row := range c.Timetable.Rows {
		if len(row.Codes) != len(c.Timetable.Days) {
			return fmt.Errorf("config: row %d has %d codes, want one per day (%d)",
				i, len(row.Codes), len(c.Timetable.Days))
		}
	}
	if c.Workload.SessionHours <= 0 {
		return fmt.Errorf("config: session_hours must be positive")
	}
	return nil
}

// Default returns the reference deployment configuration: a 5-day, 6-period
// grid with 80-minute sessions counted as 1.5 contact hours each.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":3001"},
		Catalog: CatalogConfig{Path: "./res/catalog.csv", Delimiter: ";"},
		Timetable: TimetableConfig{
			Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			Rows: []RowConfig{
				{Time: "08:30 AM - 09:50 AM", Codes: []string{"A1", "B1", "A2", "C2", "B2"}},
				{Time: "10:00 AM - 11:20 AM", Codes: []string{"C1", "D1", "E1", "D2", "E2"}},
				{Time: "11:30 AM - 12:50 PM", Codes: []string{"F1", "G1", "H2", "F2", "G2"}},
				{Time: "02:00 PM - 03:20 PM", Codes: []string{"I1", "J1", "I2", "K2", "J2"}},
				{Time: "03:30 PM - 04:50 PM", Codes: []string{"K1", "L1", "M1", "L2", "M2"}},
				{Time: "05:00 PM - 06:20 PM", Codes: []string{"H1", "N1", "P1", "N2", "P2"}},
			},
		},
		Workload: WorkloadConfig{
			SessionHours: 1.5,
			LightBelow:   12,
			BalancedUpTo: 18,
		},
		Calendar: CalendarConfig{
			Timezone:  "Asia/Kolkata",
			WeekStart: "20260105",
			Until:     "20260530",
			ProdID:    "-//CourseMash//Academic Schedule//EN",
			Filename:  "University_Schedule.ics",
			Policy:    "all",
		},
	}
}
