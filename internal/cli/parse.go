package cli

import (
	"context"
	"encoding/json"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	"github.com/ragulkarthick4/Azure-Search-index/internal/parsing"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// Parse parses the report documents supplied in `filepaths` and prints them as formatted JSON to stdout.
func (s Service) Parse(_ context.Context, filepaths []string) error {
	reports := make([]*v1.ReportDocument, 0, len(filepaths))

	for _, reportPath := range filepaths {
		report, err := s.parseReport(reportPath)
		if err != nil {
			return s.logError(err)
		}

		reports = append(reports, report)
	}

	newOutput, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return errors.NewInternalError("Unable to output report documents as JSON: %s", err)
	}
	s.Log.Infoln(string(newOutput))

	return nil
}

func (s Service) parseReport(reportPath string) (*v1.ReportDocument, error) {
	s.Log.Debugf("Attempting to parse %q", reportPath)

	fd, err := s.FileSystem.Open(reportPath)
	if err != nil {
		return nil, errors.NewSystemError("unable to open file: %s", err)
	}
	defer fd.Close()

	report, err := parsing.Parse(fd, s.ParseConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %q", reportPath)
	}

	return report, nil
}
