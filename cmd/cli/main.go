package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coursemash/coursemash/internal/config"
	"github.com/coursemash/coursemash/internal/csvio"
	"github.com/coursemash/coursemash/internal/timetable"
	"github.com/coursemash/coursemash/pkg/model"
)

func main() {
	configPath := flag.String("config", "./res/config.yaml", "deployment config file")
	enrollmentPath := flag.String("enrollment", "./res/enrollment.txt", "enrolled course codes, one per line")
	outPath := flag.String("out", "", "write the calendar export to this path (default: calendar filename from config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load catalog:", err)
		os.Exit(1)
	}

	codes, err := csvio.LoadEnrollment(*enrollmentPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load enrollment:", err)
		os.Exit(1)
	}

	byCode := make(map[string]model.Course, len(catalog))
	for _, c := range catalog {
		byCode[model.NormalizeCode(c.Code)] = c
	}

	// Resolve code references against the catalog, keeping enrollment order.
	var enrolled []model.Course
	for _, code := range codes {
		course, ok := byCode[model.NormalizeCode(code)]
		if !ok {
			fmt.Printf("%s is not in the catalog, skipping.\n", code)
			continue
		}
		enrolled = append(enrolled, course)
	}

	slots := timetable.NewSlotCatalog(cfg.Timetable)
	grid := timetable.BuildGrid(enrolled, slots)

	csvio.PrintTimetable(grid)

	flexible := timetable.FlexibleCourses(enrolled)
	if len(flexible) != 0 {
		fmt.Println("Courses without a fixed slot:")
		for _, c := range flexible {
			fmt.Printf("  %s %s (%d credits)\n", c.Code, c.Name, c.Credits.Value())
		}
		fmt.Println()
	}

	csvio.PrintConflicts(timetable.Conflicts(grid, slots))

	stats := timetable.ComputeStats(enrolled, cfg.Workload.SessionHours, timetable.Thresholds{
		LightBelow:   cfg.Workload.LightBelow,
		BalancedUpTo: cfg.Workload.BalancedUpTo,
	})
	fmt.Printf("\nCourses: %d (%d flexible)\n", stats.Courses, stats.Flexible)
	fmt.Printf("Credits: %d\n", stats.Credits)
	fmt.Printf("Weekly hours: %g\n", stats.WeeklyHours)
	fmt.Printf("Load: %s\n", stats.Load)

	ics := timetable.ExportICS(grid, exportOptions(cfg.Calendar))
	out := *outPath
	if out == "" {
		out = cfg.Calendar.Filename
	}
	if err := csvio.WriteCalendar(out, ics); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to write calendar:", err)
		os.Exit(1)
	}
	fmt.Println("Exported calendar to: " + out)
}

func loadCatalog(cfg *config.Config) ([]model.Course, error) {
	if filepath.Ext(cfg.Catalog.Path) == ".json" {
		return csvio.LoadCatalogJSON(cfg.Catalog.Path)
	}
	delim := ';'
	if cfg.Catalog.Delimiter != "" {
		delim = rune(cfg.Catalog.Delimiter[0])
	}
	return csvio.LoadCatalog(cfg.Catalog.Path, delim)
}

func exportOptions(cc config.CalendarConfig) timetable.ExportOptions {
	policy := timetable.PolicyExportAll
	if cc.Policy == "first" {
		policy = timetable.PolicyFirstWins
	}
	return timetable.ExportOptions{
		Timezone:  cc.Timezone,
		WeekStart: cc.WeekStart,
		Until:     cc.Until,
		ProdID:    cc.ProdID,
		Policy:    policy,
	}
}
