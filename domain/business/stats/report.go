package stats

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
)

const (
	reportType  = "bikeshare-report"
	reportStage = "aggregation"
)

// Elapsed time spent computing each section of a Report
type Elapsed struct {
	Time     time.Duration `json:"time"`
	Stations time.Duration `json:"stations"`
	Duration time.Duration `json:"duration"`
	Users    time.Duration `json:"users"`
}

// Report all the statistics of one filtered dataset
type Report struct {
	RunID    string            `json:"run_id"`
	Metadata entities.Metadata `json:"metadata"`
	Filter   filter.Spec       `json:"filter"`
	Records  int               `json:"records"`
	Time     *TimeStats        `json:"time"`
	Stations *StationStats     `json:"stations"`
	Duration *DurationStats    `json:"duration"`
	Users    *UserStats        `json:"users"`
	Elapsed  Elapsed           `json:"elapsed"`
}

// BuildReport computes the four statistic groups over ds. It fails with ErrEmptyDataset
// when ds has no records. locator may be nil.
func BuildReport(ds *dataset.Dataset, spec filter.Spec, locator StationLocator) (*Report, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("%w: no trips for %s (month: %s, day: %s)", dataErrors.ErrEmptyDataset, spec.City, spec.Month, spec.Day)
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Metadata: entities.NewMetadata(string(ds.City), reportType, reportStage, ""),
		Filter:   spec,
		Records:  ds.Len(),
	}

	var err error
	start := time.Now()
	if report.Time, err = ComputeTimeStats(ds); err != nil {
		return nil, err
	}
	report.Elapsed.Time = time.Since(start)

	start = time.Now()
	if report.Stations, err = ComputeStationStats(ds, locator); err != nil {
		return nil, err
	}
	report.Elapsed.Stations = time.Since(start)

	start = time.Now()
	if report.Duration, err = ComputeDurationStats(ds); err != nil {
		return nil, err
	}
	report.Elapsed.Duration = time.Since(start)

	start = time.Now()
	if report.Users, err = ComputeUserStats(ds); err != nil {
		return nil, err
	}
	report.Elapsed.Users = time.Since(start)

	report.Metadata.Message = fmt.Sprintf("%d trips analyzed", report.Records)
	log.Debugf("[component: stats][method: BuildReport][runID: %s][status: OK] report built for %s with %d trips", report.RunID, ds.City, report.Records)

	return report, nil
}
