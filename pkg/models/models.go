package models

import (
	"errors"
	"math"
	"time"
)

// Status is the approval state of a shift request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ShiftRequest is a staff member's proposed working interval for one date
type ShiftRequest struct {
	ID          string    `gorm:"primaryKey" json:"id" firestore:"id"`
	Date        string    `gorm:"index;not null" json:"date" firestore:"date"`
	StaffID     string    `gorm:"index" json:"staffId,omitempty" firestore:"staffId"`
	StaffName   string    `gorm:"not null" json:"staffName" firestore:"staffName"`
	StartTime   string    `gorm:"not null" json:"startTime" firestore:"startTime"`
	EndTime     string    `gorm:"not null" json:"endTime" firestore:"endTime"`
	Status      Status    `gorm:"index;not null;default:pending" json:"status" firestore:"status"`
	SubmittedAt time.Time `json:"submittedAt" firestore:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Staff is a roster entry
type Staff struct {
	ID        string    `gorm:"primaryKey" json:"id" firestore:"id"`
	Name      string    `gorm:"not null" json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// StaffingConfig holds the two numbers a staffing target is derived from
type StaffingConfig struct {
	DailyTargetStaffCount float64 `json:"dailyTargetStaffCount"`
	AverageHoursPerStaff  float64 `json:"averageHoursPerStaff"`
}

// TargetHours is the number of staff hours needed to meet the daily target
func (c StaffingConfig) TargetHours() float64 {
	return c.DailyTargetStaffCount * c.AverageHoursPerStaff
}

// Valid reports whether a staffing ratio can be computed from c
func (c StaffingConfig) Valid() bool {
	return c.DailyTargetStaffCount > 0 && c.AverageHoursPerStaff > 0
}

// MinTargetHours is the smallest positive average shift length and target
// that Check accepts: one minute.
const MinTargetHours = 1.0 / 60

var (
	ErrNonFiniteConfig = errors.New("staffing target must be a finite number")
	ErrTargetTooSmall  = errors.New("staffing target must be at least one minute")
)

// Check rejects configurations whose metrics could not be encoded. Zero or
// negative values still pass; they yield the normal classification.
func (c StaffingConfig) Check() error {
	if !finite(c.DailyTargetStaffCount) || !finite(c.AverageHoursPerStaff) || !finite(c.TargetHours()) {
		return ErrNonFiniteConfig
	}
	if c.Valid() && (c.AverageHoursPerStaff < MinTargetHours || c.TargetHours() < MinTargetHours) {
		return ErrTargetTooSmall
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Classification is the staffing adequacy of a single day
type Classification string

const (
	ClassSevereShortage   Classification = "severe-shortage"
	ClassModerateShortage Classification = "moderate-shortage"
	ClassSlightShortage   Classification = "slight-shortage"
	ClassStaffingOK       Classification = "staffing-ok"
	ClassOverstaffing     Classification = "overstaffing"
	// ClassNormal is used when no valid target exists
	ClassNormal Classification = "normal"
)

// Shortage reports whether c is one of the three shortage bands
func (c Classification) Shortage() bool {
	return c == ClassSevereShortage || c == ClassModerateShortage || c == ClassSlightShortage
}

// DailyStaffingMetric is the derived staffing picture for one date
type DailyStaffingMetric struct {
	Date             string         `json:"date"`
	ActualHours      float64        `json:"actualHours"`
	ActualStaffCount int            `json:"actualStaffCount"`
	TargetHours      float64        `json:"targetHours"`
	EquivalentStaff  float64        `json:"equivalentStaff"`
	StaffingRatio    float64        `json:"staffingRatio"`
	Classification   Classification `json:"classification"`
	ExcludedRecords  int            `json:"excludedRecords,omitempty"`
}

// DateRange is an inclusive range of calendar days. A zero From means no range
// was selected; a zero To means the single day From.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ShiftRequestInput is the payload accepted by the submission endpoint
type ShiftRequestInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	StaffID   string `json:"staffId,omitempty"`
	StaffName string `json:"staffName,omitempty"`
}

// SubmitResponse is returned after a shift request has been stored
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DocID   string `json:"docId"`
}
