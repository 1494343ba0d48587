package main

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/zerocurve/curve/bootstrap"
)

// scheduleFile is the YAML input of the build command. Periods are already
// day counts from the valuation date.
type scheduleFile struct {
	Convention  *bootstrap.Convention        `yaml:"convention"`
	Instruments []bootstrap.CashFlowSchedule `yaml:"instruments"`
}

func readScheduleFile(path string) (scheduleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scheduleFile{}, errors.Wrap(err, "read schedules")
	}
	return parseScheduleFile(raw)
}

func parseScheduleFile(raw []byte) (scheduleFile, error) {
	var in scheduleFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return scheduleFile{}, errors.Wrap(err, "parse schedules")
	}
	if len(in.Instruments) == 0 {
		return scheduleFile{}, errors.New("no instruments in input")
	}
	return in, nil
}

func sortByMaturity(schedules []bootstrap.CashFlowSchedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].MaturityPeriod < schedules[j].MaturityPeriod
	})
}
