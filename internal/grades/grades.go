// Package grades implements the portal's calculators: credit-weighted
// grade averages and internal-marks estimation. Everything here is pure
// arithmetic over a fixed grade scale; nothing is persisted.
package grades

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Grade is a letter grade on the 10-point scale.
type Grade string

const (
	GradeO     Grade = "O"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeP     Grade = "P"
	GradeF     Grade = "F"
)

var gradePoints = map[Grade]float64{
	GradeO:     10,
	GradeAPlus: 9,
	GradeA:     8,
	GradeBPlus: 7,
	GradeB:     6,
	GradeC:     5,
	GradeP:     4,
	GradeF:     0,
}

var (
	ErrUnknownGrade = errors.New("unknown grade")
	ErrNoCredits    = errors.New("total credits must be positive")
	ErrOutOfRange   = errors.New("mark out of range")
	ErrUnreachable  = errors.New("target not reachable with a full end-term score")
)

// Points returns the grade point for a letter grade.
func Points(g Grade) (float64, error) {
	p, ok := gradePoints[g]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrade, g)
	}
	return p, nil
}

// Course is one graded course with its credit weight.
type Course struct {
	Name    string  `json:"name"`
	Credits float64 `json:"credits"`
	Grade   Grade   `json:"grade"`
}

// SGPA is the credit-weighted average grade point across one semester's
// courses, rounded to two decimals.
func SGPA(courses []Course) (float64, error) {
	var weighted, credits float64
	for _, c := range courses {
		p, err := Points(c.Grade)
		if err != nil {
			return 0, err
		}
		if c.Credits < 0 {
			return 0, fmt.Errorf("%w: negative credits for %q", ErrOutOfRange, c.Name)
		}
		weighted += p * c.Credits
		credits += c.Credits
	}
	if credits <= 0 {
		return 0, ErrNoCredits
	}
	return round2(weighted / credits), nil
}

// SemesterResult is one semester's SGPA with the credits it carried.
type SemesterResult struct {
	SGPA    float64 `json:"sgpa"`
	Credits float64 `json:"credits"`
}

// CGPA is the credit-weighted average of semester SGPAs, rounded to two
// decimals.
func CGPA(results []SemesterResult) (float64, error) {
	var weighted, credits float64
	for i, r := range results {
		if r.SGPA < 0 || r.SGPA > 10 {
			return 0, fmt.Errorf("%w: sgpa %v in semester %d", ErrOutOfRange, r.SGPA, i+1)
		}
		if r.Credits < 0 {
			return 0, fmt.Errorf("%w: negative credits in semester %d", ErrOutOfRange, i+1)
		}
		weighted += r.SGPA * r.Credits
		credits += r.Credits
	}
	if credits <= 0 {
		return 0, ErrNoCredits
	}
	return round2(weighted / credits), nil
}

// Percentage converts a CGPA to its percentage equivalent using the
// (CGPA - 0.75) x 10 convention, clamped to [0, 100].
func Percentage(cgpa float64) float64 {
	p := (cgpa - 0.75) * 10
	return round2(math.Min(100, math.Max(0, p)))
}

// Maximum marks per internal assessment component.
const (
	TestMax       = 30
	AssignmentMax = 10
	AttendanceMax = 10
	InternalMax   = TestMax + AssignmentMax + AttendanceMax // 50
	EndTermMax    = 100
)

// InternalMarks are the raw internal assessment components: three
// sessional tests out of 30 each, assignment out of 10, attendance
// marks out of 10.
type InternalMarks struct {
	Test1      float64 `json:"test1"`
	Test2      float64 `json:"test2"`
	Test3      float64 `json:"test3"`
	Assignment float64 `json:"assignment"`
	Attendance float64 `json:"attendance"`
}

// Internal estimates the internal score out of 50: the average of the
// best two sessional tests plus assignment and attendance marks.
func Internal(m InternalMarks) (float64, error) {
	for name, v := range map[string]float64{"test1": m.Test1, "test2": m.Test2, "test3": m.Test3} {
		if v < 0 || v > TestMax {
			return 0, fmt.Errorf("%w: %s=%v (0..%d)", ErrOutOfRange, name, v, TestMax)
		}
	}
	if m.Assignment < 0 || m.Assignment > AssignmentMax {
		return 0, fmt.Errorf("%w: assignment=%v (0..%d)", ErrOutOfRange, m.Assignment, AssignmentMax)
	}
	if m.Attendance < 0 || m.Attendance > AttendanceMax {
		return 0, fmt.Errorf("%w: attendance=%v (0..%d)", ErrOutOfRange, m.Attendance, AttendanceMax)
	}

	tests := []float64{m.Test1, m.Test2, m.Test3}
	sort.Float64s(tests)
	bestTwo := (tests[1] + tests[2]) / 2

	return round2(bestTwo + m.Assignment + m.Attendance), nil
}

// RequiredEndTerm returns the minimum end-term mark (out of 100) needed
// to reach target total marks out of 150, given an internal score out of
// 50. ErrUnreachable when even a full end-term paper cannot get there.
func RequiredEndTerm(internal, target float64) (float64, error) {
	if internal < 0 || internal > InternalMax {
		return 0, fmt.Errorf("%w: internal=%v (0..%d)", ErrOutOfRange, internal, InternalMax)
	}
	if target < 0 || target > InternalMax+EndTermMax {
		return 0, fmt.Errorf("%w: target=%v (0..%d)", ErrOutOfRange, target, InternalMax+EndTermMax)
	}
	required := target - internal
	if required <= 0 {
		return 0, nil
	}
	if required > EndTermMax {
		return 0, ErrUnreachable
	}
	return round2(required), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
