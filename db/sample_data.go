/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/humaidq/riskboard/utils"
)

// ImportResult summarises the import of one sample file.
type ImportResult struct {
	Collection Collection
	File       string
	Loaded     int
	Malformed  int
	Skipped    bool
}

type sampleFile struct {
	name  string
	coll  Collection
	sep   rune
	parse func(utils.Record) (any, error)
}

var sampleFiles = []sampleFile{
	{name: "discharge-admissions.psv", coll: CollectionAdmissions, sep: '|', parse: parseAdmission},
	{name: "discharge-comorbids.psv", coll: CollectionComorbids, sep: '|', parse: parseComorbid},
	{name: "discharge-patients.psv", coll: CollectionDischargePatients, sep: '|', parse: parseDischargePatient},
	{name: "processed-data.psv", coll: CollectionProcessedPatients, sep: '|', parse: parseProcessedPatient},
	{name: "app-reference-data.csv", coll: CollectionReferencePopulation, sep: ',', parse: parseReferenceSample},
	{name: "app-readmission-data.csv", coll: CollectionReadmissionRates, sep: ',', parse: parseReadmissionRate},
}

// LoadSampleData imports the sample exports found in dir. A collection that
// already holds documents is left untouched unless reset is set, in which
// case every collection is emptied first. Malformed rows are logged and
// counted but do not stop the import.
func LoadSampleData(ctx context.Context, dir string, reset bool) ([]ImportResult, error) {
	if dir == "" {
		return nil, ErrSampleDirRequired
	}

	if reset {
		if err := DeleteAllData(ctx); err != nil {
			return nil, fmt.Errorf("failed to reset sample data: %w", err)
		}
	}

	results := make([]ImportResult, 0, len(sampleFiles))

	for _, sf := range sampleFiles {
		result, err := loadSampleFile(ctx, dir, sf)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func loadSampleFile(ctx context.Context, dir string, sf sampleFile) (ImportResult, error) {
	result := ImportResult{Collection: sf.coll, File: sf.name}

	existing, err := CountDocuments(ctx, sf.coll)
	if err != nil {
		return result, err
	}

	if existing > 0 {
		importLogger.Info("Collection already populated", "collection", sf.coll, "documents", existing)

		result.Skipped = true

		return result, nil
	}

	path := filepath.Join(dir, sf.name)

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		importLogger.Warn("Sample file not found", "path", path)

		result.Skipped = true

		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			importLogger.Warn("Failed to close sample file", "path", path, "error", err)
		}
	}()

	importLogger.Info("No sample data, loading", "collection", sf.coll, "path", path)

	docs, malformed, err := parseSampleFile(file, sf)
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	result.Malformed = malformed

	loaded, err := InsertDocuments(ctx, sf.coll, docs)
	if err != nil {
		return result, err
	}

	result.Loaded = loaded

	importLogger.Info("Finished loading sample data",
		"collection", sf.coll,
		"loaded", loaded,
		"malformed", malformed,
	)

	return result, nil
}

func parseSampleFile(r io.Reader, sf sampleFile) ([]any, int, error) {
	records, err := utils.ReadDelimited(r, sf.sep)
	if err != nil {
		return nil, 0, err
	}

	docs := make([]any, 0, len(records))
	malformed := 0

	for _, rec := range records {
		doc, err := sf.parse(rec)
		if err != nil {
			importLogger.Warn("Skipping malformed row", "file", sf.name, "line", rec.Line, "error", err)

			malformed++

			continue
		}

		docs = append(docs, doc)
	}

	return docs, malformed, nil
}

// rowReader keeps the first field error so a row can be decoded without
// checking every accessor.
type rowReader struct {
	rec utils.Record
	err error
}

func (r *rowReader) int64(i int) int64 {
	if r.err != nil {
		return 0
	}

	v, err := r.rec.Int64(i)
	r.err = err

	return v
}

func (r *rowReader) float(i int) float64 {
	if r.err != nil {
		return 0
	}

	v, err := r.rec.Float(i)
	r.err = err

	return v
}

func (r *rowReader) str(i int) string {
	if r.err != nil {
		return ""
	}

	v, err := r.rec.String(i)
	r.err = err

	return v
}

func (r *rowReader) time(i int) *time.Time {
	if r.err != nil {
		return nil
	}

	v, err := r.rec.Time(i)
	r.err = err

	return v
}

func parseAdmission(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	a := DischargeAdmission{
		RowID:              r.int64(0),
		SubjectID:          r.int64(1),
		AdmissionID:        r.int64(2),
		AdmitTime:          r.time(3),
		DischargeTime:      r.time(4),
		DeathTime:          r.time(5),
		AdmissionType:      r.str(6),
		AdmissionLocation:  r.str(7),
		DischargeLocation:  r.str(8),
		Insurance:          r.str(9),
		Language:           r.str(10),
		Religion:           r.str(11),
		MaritalStatus:      r.str(12),
		Ethnicity:          r.str(13),
		EDRegTime:          r.time(14),
		EDOutTime:          r.time(15),
		Diagnosis:          r.str(16),
		HospitalExpireFlag: r.int64(17),
		HasIOEventsData:    r.int64(18),
		HasChartEventsData: r.int64(19),
	}

	return a, r.err
}

func parseComorbid(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	c := DischargeComorbid{
		RowID:        r.int64(0),
		SubjectID:    r.int64(1),
		AdmissionID:  r.int64(2),
		DRGType:      r.str(3),
		DRGCode:      r.int64(4),
		Description:  r.str(5),
		DRGSeverity:  r.float(6),
		DRGMortality: r.float(7),
	}

	return c, r.err
}

func parseDischargePatient(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	p := DischargePatient{
		RowID:      r.int64(0),
		SubjectID:  r.int64(1),
		Gender:     r.str(2),
		DOB:        r.time(3),
		DOD:        r.time(4),
		DODHosp:    r.time(5),
		DODSSN:     r.time(6),
		ExpireFlag: r.int64(7),
	}

	return p, r.err
}

func parseProcessedPatient(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	p := ProcessedPatient{
		AdmissionID:     r.int64(0),
		SubjectID:       r.int64(1),
		AdmissionType:   r.str(2),
		Diagnosis:       r.str(3),
		Insurance:       r.str(4),
		Ethnicity:       r.str(5),
		Language:        r.str(6),
		MaritalStatus:   r.str(7),
		AdmitTime:       r.time(8),
		DischargeTime:   r.time(9),
		AvgDRGSeverity:  r.float(10),
		AvgDRGMortality: r.float(11),
		Gender:          r.str(12),
		DOB:             r.time(13),
		Age:             r.float(14),
		RiskScore:       r.float(15),
	}

	return p, r.err
}

func parseReferenceSample(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	s := ReferenceSample{
		Age:          r.float(0),
		AvgSeverity:  r.float(1),
		AvgMortality: r.float(2),
	}

	return s, r.err
}

func parseReadmissionRate(rec utils.Record) (any, error) {
	r := &rowReader{rec: rec}
	rate := ReadmissionRate{
		Date:            r.str(0),
		ReadmissionRate: r.float(1),
	}

	return rate, r.err
}
