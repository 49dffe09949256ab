package staffing

import (
	"fmt"
	"math"

	"github.com/arnavshah/shift-admin-go/pkg/models"
)

// Default band thresholds, as fractions of the daily target
const (
	DefaultSevereBelow   = 0.5
	DefaultModerateBelow = 0.8
	DefaultSlightBelow   = 1.0
	DefaultOKUpTo        = 1.2
)

// Band is one row of the classification table. A ratio falls in the band when
// it is below Bound, or equal to it when Inclusive is set.
type Band struct {
	Bound     float64               `json:"bound"`
	Inclusive bool                  `json:"inclusive"`
	Class     models.Classification `json:"class"`
}

func (b Band) contains(ratio float64) bool {
	if b.Inclusive {
		return ratio <= b.Bound
	}
	return ratio < b.Bound
}

// Bands is an ordered classification table, evaluated low to high
type Bands []Band

// Classify returns the class of the first band containing ratio
func (bs Bands) Classify(ratio float64) models.Classification {
	for _, b := range bs {
		if b.contains(ratio) {
			return b.Class
		}
	}
	return models.ClassNormal
}

// Thresholds are the four cut points between the five staffing classes
type Thresholds struct {
	SevereBelow   float64 `json:"severeBelow"`
	ModerateBelow float64 `json:"moderateBelow"`
	SlightBelow   float64 `json:"slightBelow"`
	OKUpTo        float64 `json:"okUpTo"`
}

// DefaultThresholds returns 0.5 / 0.8 / 1.0 / 1.2
func DefaultThresholds() Thresholds {
	return Thresholds{
		SevereBelow:   DefaultSevereBelow,
		ModerateBelow: DefaultModerateBelow,
		SlightBelow:   DefaultSlightBelow,
		OKUpTo:        DefaultOKUpTo,
	}
}

// Validate checks that the thresholds are finite and strictly ascending
func (t Thresholds) Validate() error {
	vals := []float64{t.SevereBelow, t.ModerateBelow, t.SlightBelow, t.OKUpTo}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("threshold %d is not a finite number", i+1)
		}
		if i > 0 && v <= vals[i-1] {
			return fmt.Errorf("thresholds must be strictly ascending, got %v", vals)
		}
	}
	return nil
}

// Bands builds the five-row table. Every bound is exclusive except the
// staffing-ok one; anything above it is overstaffing.
func (t Thresholds) Bands() Bands {
	return Bands{
		{Bound: t.SevereBelow, Class: models.ClassSevereShortage},
		{Bound: t.ModerateBelow, Class: models.ClassModerateShortage},
		{Bound: t.SlightBelow, Class: models.ClassSlightShortage},
		{Bound: t.OKUpTo, Inclusive: true, Class: models.ClassStaffingOK},
		{Bound: math.Inf(1), Inclusive: true, Class: models.ClassOverstaffing},
	}
}

// DefaultBands is DefaultThresholds().Bands()
func DefaultBands() Bands {
	return DefaultThresholds().Bands()
}
