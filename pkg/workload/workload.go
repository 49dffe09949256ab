package workload

import (
	"math"
	"sort"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
)

// StaffWorkload is one staff member's approved work inside a report range
type StaffWorkload struct {
	StaffID    string   `json:"staffId,omitempty"`
	StaffName  string   `json:"staffName"`
	Hours      float64  `json:"hours"`
	ShiftCount int      `json:"shiftCount"`
	Dates      []string `json:"dates"`
}

// Conflict is a pair of approved shifts for the same person that overlap
type Conflict struct {
	StaffName string   `json:"staffName"`
	Date      string   `json:"date"`
	ShiftIDs  []string `json:"shiftIds"`
}

// Report summarises approved work per staff member
type Report struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	TotalHours      float64         `json:"totalHours"`
	FairnessScore   float64         `json:"fairnessScore"`
	Staff           []StaffWorkload `json:"staff"`
	Conflicts       []Conflict      `json:"conflicts"`
	ExcludedRecords int             `json:"excludedRecords"`
}

type interval struct {
	id         string
	start, end int
}

// Builder accumulates approved shifts into per-staff totals
type Builder struct {
	Staff     map[string]*StaffWorkload
	Conflicts []Conflict
	Excluded  int

	minutes map[string]int
	byDay   map[string][]interval
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		Staff:   make(map[string]*StaffWorkload),
		minutes: make(map[string]int),
		byDay:   make(map[string][]interval),
	}
}

// Overlap checks if two minute ranges overlap
func (b *Builder) Overlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Add records every approved shift in shifts. Records with unparseable times
// are counted in Excluded and otherwise ignored.
func (b *Builder) Add(shifts []models.ShiftRequest) {
	for _, s := range shifts {
		if s.Status != models.StatusApproved {
			continue
		}
		start, err := staffing.ParseClock(s.StartTime)
		if err != nil {
			b.Excluded++
			continue
		}
		end, err := staffing.ParseClock(s.EndTime)
		if err != nil {
			b.Excluded++
			continue
		}

		w, ok := b.Staff[s.StaffName]
		if !ok {
			w = &StaffWorkload{StaffName: s.StaffName, Dates: []string{}}
			b.Staff[s.StaffName] = w
		}
		if w.StaffID == "" {
			w.StaffID = s.StaffID
		}
		w.ShiftCount++
		if len(w.Dates) == 0 || w.Dates[len(w.Dates)-1] != s.Date {
			w.Dates = append(w.Dates, s.Date)
		}
		b.minutes[s.StaffName] += end - start
		w.Hours = float64(b.minutes[s.StaffName]) / 60

		key := s.StaffName + "|" + s.Date
		for _, prev := range b.byDay[key] {
			if b.Overlap(prev.start, prev.end, start, end) {
				b.Conflicts = append(b.Conflicts, Conflict{
					StaffName: s.StaffName,
					Date:      s.Date,
					ShiftIDs:  []string{prev.id, s.ID},
				})
			}
		}
		b.byDay[key] = append(b.byDay[key], interval{id: s.ID, start: start, end: end})
	}
}

// CalculateFairnessScore returns a percentage (0-100) representing how evenly
// hours are spread across staff. 100% is perfectly fair (Standard Deviation = 0).
func (b *Builder) CalculateFairnessScore() float64 {
	if len(b.Staff) == 0 {
		return 100.0
	}

	var sum float64
	for _, w := range b.Staff {
		sum += w.Hours
	}
	if sum <= 0 {
		return 100.0
	}

	mean := sum / float64(len(b.Staff))

	var varianceSum float64
	for _, w := range b.Staff {
		diff := w.Hours - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(b.Staff)))

	// 100% means SD is 0. 0% means SD is >= mean.
	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}

// Report produces the sorted summary for the given range labels
func (b *Builder) Report(from, to string) Report {
	r := Report{
		From:            from,
		To:              to,
		FairnessScore:   b.CalculateFairnessScore(),
		Staff:           make([]StaffWorkload, 0, len(b.Staff)),
		Conflicts:       append([]Conflict{}, b.Conflicts...),
		ExcludedRecords: b.Excluded,
	}

	total := 0
	for name, w := range b.Staff {
		total += b.minutes[name]
		entry := *w
		entry.Dates = append([]string{}, w.Dates...)
		sort.Strings(entry.Dates)
		entry.Dates = dedupe(entry.Dates)
		r.Staff = append(r.Staff, entry)
	}
	r.TotalHours = float64(total) / 60

	sort.Slice(r.Staff, func(i, j int) bool {
		return r.Staff[i].StaffName < r.Staff[j].StaffName
	})
	sort.SliceStable(r.Conflicts, func(i, j int) bool {
		if r.Conflicts[i].Date != r.Conflicts[j].Date {
			return r.Conflicts[i].Date < r.Conflicts[j].Date
		}
		return r.Conflicts[i].StaffName < r.Conflicts[j].StaffName
	})
	return r
}

// Build is a shortcut for NewBuilder, Add and Report
func Build(shifts []models.ShiftRequest, from, to string) Report {
	b := NewBuilder()
	b.Add(shifts)
	return b.Report(from, to)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
