package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// Column names of the persisted tabular form
const (
	colLossID       = "Loss ID"
	colDate         = "Date"
	colRiskCategory = "Risk Category"
	colLossAmount   = "Loss Amount"
	colDescription  = "Description"
	colRootCause    = "Root Cause"
	colInsuredLoss  = "Insured Loss"
	colRetainedLoss = "Retained Loss"
)

var baseColumns = []string{
	colLossID, colDate, colRiskCategory, colLossAmount, colDescription, colRootCause,
}

// Date layouts accepted when loading. Saving always uses RFC 3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CSVFile reads and writes a loss dataset as a delimited table with the
// six base columns, plus the two derived columns for mitigated datasets.
type CSVFile struct {
	path string
}

// NewCSVFile creates a CSVFile bound to the given path
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Load reads the dataset. Row-level problems (unparseable cells, ragged
// rows) are returned as schema findings rather than errors; affected
// cells are left at their zero value so the validator can flag them.
func (f *CSVFile) Load(ctx context.Context) (*model.LossDataset, []model.CheckResult, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open dataset file",
			goerr.V("path", f.path))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read CSV header",
			goerr.V("path", f.path))
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	var findings []model.CheckResult
	for _, name := range baseColumns {
		if _, ok := colIdx[name]; !ok {
			findings = append(findings, model.CheckResult{
				Name:   "required column",
				Status: model.CheckFail,
				Detail: fmt.Sprintf("column %q is missing", name),
			})
		}
	}

	_, hasInsured := colIdx[colInsuredLoss]
	_, hasRetained := colIdx[colRetainedLoss]
	enriched := hasInsured && hasRetained

	ds := model.NewLossDataset()

	cell := func(record []string, name string) (string, bool) {
		idx, ok := colIdx[name]
		if !ok || idx >= len(record) {
			return "", false
		}
		return record[idx], true
	}

	badCells := map[string]int{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			badCells["unreadable row"]++
			continue
		}

		ev := &model.LossEvent{}

		if v, ok := cell(record, colLossID); ok {
			id, err := strconv.Atoi(v)
			if err != nil {
				badCells["non-integer Loss ID"]++
			} else {
				ev.ID = types.LossID(id)
			}
		}

		if v, ok := cell(record, colDate); ok {
			if t, err := parseDate(v); err != nil {
				badCells["unparseable Date"]++
			} else {
				ev.Date = t
			}
		}

		if v, ok := cell(record, colLossAmount); ok {
			amount, err := strconv.ParseFloat(v, 64)
			if err != nil {
				badCells["non-numeric Loss Amount"]++
			} else {
				ev.LossAmount = amount
			}
		}

		if v, ok := cell(record, colRiskCategory); ok {
			ev.RiskCategory = types.RiskCategory(v)
		}
		if v, ok := cell(record, colDescription); ok {
			ev.Description = v
		}
		if v, ok := cell(record, colRootCause); ok {
			ev.RootCause = types.RootCause(v)
		}

		if enriched {
			insured, okIns := cell(record, colInsuredLoss)
			retained, okRet := cell(record, colRetainedLoss)
			if okIns && okRet {
				insVal, errIns := strconv.ParseFloat(insured, 64)
				retVal, errRet := strconv.ParseFloat(retained, 64)
				if errIns == nil && errRet == nil {
					ev.InsuredLoss = insVal
					ev.RetainedLoss = retVal
					ev.Mitigated = true
				} else {
					badCells["non-numeric derived loss"]++
				}
			}
		}

		ds.Events = append(ds.Events, ev)
	}

	for kind, count := range badCells {
		findings = append(findings, model.CheckResult{
			Name:   "cell parsing",
			Status: model.CheckFail,
			Detail: fmt.Sprintf("%s in %d row(s)", kind, count),
		})
	}

	return ds, findings, nil
}

// Save writes the dataset. The derived columns are included only when
// every event carries mitigation results.
func (f *CSVFile) Save(ctx context.Context, dataset *model.LossDataset) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}

	file, err := os.Create(f.path)
	if err != nil {
		return goerr.Wrap(err, "failed to create dataset file",
			goerr.V("path", f.path))
	}
	defer file.Close()

	return f.Write(ctx, file, dataset)
}

// Write writes the dataset to an arbitrary writer in the persisted form
func (f *CSVFile) Write(ctx context.Context, w io.Writer, dataset *model.LossDataset) error {
	enriched := dataset.Len() > 0
	for _, ev := range dataset.Events {
		if !ev.Mitigated {
			enriched = false
			break
		}
	}

	writer := csv.NewWriter(w)

	header := baseColumns
	if enriched {
		header = append(append([]string{}, baseColumns...), colInsuredLoss, colRetainedLoss)
	}
	if err := writer.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, ev := range dataset.Events {
		record := []string{
			strconv.Itoa(ev.ID.Int()),
			ev.Date.Format(time.RFC3339),
			ev.RiskCategory.String(),
			strconv.FormatFloat(ev.LossAmount, 'f', -1, 64),
			ev.Description,
			ev.RootCause.String(),
		}
		if enriched {
			record = append(record,
				strconv.FormatFloat(ev.InsuredLoss, 'f', -1, 64),
				strconv.FormatFloat(ev.RetainedLoss, 'f', -1, 64),
			)
		}
		if err := writer.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV record",
				goerr.V("id", ev.ID))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV output")
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
