// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iod

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "20060102"
	timeLayout = "150405.999999"
)

// parseDate parses a DA value. The ACR-NEMA form YYYY.MM.DD is accepted.
func parseDate(s string) (year int, month time.Month, day int, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date %q: %v", s, err)
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// parseTime parses a TM value HH[MM[SS[.F{1,6}]]]. The ACR-NEMA form HH:MM:SS is accepted.
func parseTime(s string) (hour, minute, sec, nsec int, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ":", "")
	whole, frac, hasFrac := strings.Cut(s, ".")
	if len(whole) < 2 || len(whole) > 6 || len(whole)%2 != 0 || (hasFrac && len(whole) != 6) {
		return 0, 0, 0, 0, fmt.Errorf("time %q: invalid length", s)
	}
	var fields [3]int
	limits := [3]int{23, 59, 60}
	for i := 0; i < len(whole)/2; i++ {
		n, err := strconv.Atoi(whole[2*i : 2*i+2])
		if err != nil || n < 0 || n > limits[i] {
			return 0, 0, 0, 0, fmt.Errorf("time %q: invalid component %q", s, whole[2*i:2*i+2])
		}
		fields[i] = n
	}
	if hasFrac {
		if len(frac) == 0 || len(frac) > 6 {
			return 0, 0, 0, 0, fmt.Errorf("time %q: invalid fraction", s)
		}
		n, err := strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
		if err != nil || n < 0 {
			return 0, 0, 0, 0, fmt.Errorf("time %q: invalid fraction", s)
		}
		nsec = n * 1000
	}
	return fields[0], fields[1], fields[2], nsec, nil
}

// combineDateTime returns the instant of a DA and TM pair. DICOM dates and times have no time
// zone, so the result is in UTC.
func combineDateTime(da, tm string) (time.Time, error) {
	year, month, day, err := parseDate(da)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, sec, nsec, err := parseTime(tm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, hour, minute, sec, nsec, time.UTC), nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatTime writes microseconds when the time has a fraction of a second
func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
