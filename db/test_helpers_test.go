// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func testContext() context.Context {
	return context.Background()
}

func writeSampleFile(t *testing.T, dir, name, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

const (
	processedSample = "hadm_id|subject_id|admission_type|diagnosis|insurance|ethnicity|language|marital_status|admittime|dischtime|avg_drg_severity|avg_drg_mortality|gender|dob|age|riskScore\n" +
		"100001|2001|EMERGENCY|SEPSIS|Medicare|WHITE|ENGL|MARRIED|2101-10-20 19:08:00|2101-10-31 13:58:00|2.5|1.5|M|2025-04-11 00:00:00|76.5|0.81\n" +
		"100002|2002|ELECTIVE|CHEST PAIN|Private|ASIAN|null|SINGLE|2150-03-02 10:00:00|2150-03-05 09:00:00|0.5|3.25|F|2110-01-01 00:00:00|40.2|0.12\n" +
		"bad|2003|URGENT|FALL|Medicaid|BLACK|ENGL|WIDOWED|2150-03-02|2150-03-05|1|1|F|2080-01-01|70|0.5\n"

	referenceSample = "age,avg_severity,avg_mortality\n" +
		"12.346,1.234,0.987\n" +
		"30,2.5,1.5\n" +
		"49.99,3.1,2.2\n" +
		"50,3.5,3.9\n" +
		"88.123,0.111,0.555\n"

	readmissionSample = "date,readmissionRate\n" +
		"2016-01,0.12\n" +
		"2016-02,0.15\n"
)
