package services

import (
	"fmt"
	"math"
	"time"

	"flexfit-backend/models"

	"gorm.io/gorm"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ProgressService recomputes charting rollups on read from the user's meal
// history. Nothing here is persisted.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Summarize buckets meals into the requested window around ref and returns
// chart-ready parallel arrays. Every bucket is the half-open interval
// [start, end); a window with no meals yields full-length zero arrays, never
// a shorter shape.
func Summarize(meals []models.Meal, period string, ref time.Time) (*models.PeriodSummary, error) {
	switch period {
	case PeriodDay:
		return summarizeDay(meals, ref), nil
	case PeriodWeek:
		return summarizeWeek(meals, ref), nil
	case PeriodMonth:
		return summarizeMonth(meals, ref), nil
	case PeriodYear:
		return summarizeYear(meals, ref), nil
	default:
		return nil, fmt.Errorf("unknown period %q", period)
	}
}

func summarizeDay(meals []models.Meal, ref time.Time) *models.PeriodSummary {
	start := dayStart(ref)
	end := start.AddDate(0, 0, 1)

	out := newSummary(PeriodDay, []string{start.Format("2006-01-02")})
	for _, m := range meals {
		if inWindow(m.AteAt, start, end) {
			addMeal(out, 0, m)
		}
	}
	return out
}

func summarizeWeek(meals []models.Meal, ref time.Time) *models.PeriodSummary {
	start := weekStart(ref)
	out := newSummary(PeriodWeek, weekdayLabels[:])

	for i := 0; i < 7; i++ {
		bucketStart := start.AddDate(0, 0, i)
		bucketEnd := start.AddDate(0, 0, i+1)
		for _, m := range meals {
			if inWindow(m.AteAt, bucketStart, bucketEnd) {
				addMeal(out, i, m)
			}
		}
	}
	return out
}

// summarizeMonth groups the month's calendar days into chunks of 7 and
// reports a daily average per chunk, dividing by the days actually present
// in the chunk (the last one is usually short).
func summarizeMonth(meals []models.Meal, ref time.Time) *models.PeriodSummary {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	weeks := (daysInMonth + 6) / 7

	labels := make([]string, weeks)
	for w := 0; w < weeks; w++ {
		labels[w] = fmt.Sprintf("Week %d", w+1)
	}
	out := newSummary(PeriodMonth, labels)

	for w := 0; w < weeks; w++ {
		chunkStart := first.AddDate(0, 0, w*7)
		chunkDays := daysInMonth - w*7
		if chunkDays > 7 {
			chunkDays = 7
		}
		chunkEnd := chunkStart.AddDate(0, 0, chunkDays)

		sum := newSummary("", []string{""})
		for _, m := range meals {
			if inWindow(m.AteAt, chunkStart, chunkEnd) {
				addMeal(sum, 0, m)
			}
		}
		out.Calories[w] = round2(sum.Calories[0] / float64(chunkDays))
		out.Protein[w] = round2(sum.Protein[0] / float64(chunkDays))
		out.Carbs[w] = round2(sum.Carbs[0] / float64(chunkDays))
		out.Fat[w] = round2(sum.Fat[0] / float64(chunkDays))
		out.Fiber[w] = round2(sum.Fiber[0] / float64(chunkDays))
	}
	return out
}

// summarizeYear averages each month's totals over the count of distinct
// calendar days that have at least one meal, not the days-in-month constant.
// Months with no logged days report zero.
func summarizeYear(meals []models.Meal, ref time.Time) *models.PeriodSummary {
	jan1 := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())

	labels := make([]string, 12)
	for i := 0; i < 12; i++ {
		labels[i] = jan1.AddDate(0, i, 0).Format("Jan")
	}
	out := newSummary(PeriodYear, labels)

	for i := 0; i < 12; i++ {
		monthStart := jan1.AddDate(0, i, 0)
		monthEnd := jan1.AddDate(0, i+1, 0)

		sum := newSummary("", []string{""})
		loggedDays := map[int]struct{}{}
		for _, m := range meals {
			if inWindow(m.AteAt, monthStart, monthEnd) {
				addMeal(sum, 0, m)
				loggedDays[m.AteAt.Day()] = struct{}{}
			}
		}
		if n := len(loggedDays); n > 0 {
			out.Calories[i] = round2(sum.Calories[0] / float64(n))
			out.Protein[i] = round2(sum.Protein[0] / float64(n))
			out.Carbs[i] = round2(sum.Carbs[0] / float64(n))
			out.Fat[i] = round2(sum.Fat[0] / float64(n))
			out.Fiber[i] = round2(sum.Fiber[0] / float64(n))
		}
	}
	return out
}

// ---------- service methods (fetch + summarize) ----------

func (s *ProgressService) Summary(userID uint, period string, ref time.Time) (*models.PeriodSummary, error) {
	from, to, err := periodWindow(period, ref)
	if err != nil {
		return nil, err
	}
	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return Summarize(meals, period, ref)
}

func periodWindow(period string, ref time.Time) (time.Time, time.Time, error) {
	switch period {
	case PeriodDay:
		start := dayStart(ref)
		return start, start.AddDate(0, 0, 1), nil
	case PeriodWeek:
		start := weekStart(ref)
		return start, start.AddDate(0, 0, 7), nil
	case PeriodMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 1, 0), nil
	case PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}
}

// ---------- internals ----------

func newSummary(period string, labels []string) *models.PeriodSummary {
	n := len(labels)
	return &models.PeriodSummary{
		Period:   period,
		Labels:   append([]string(nil), labels...),
		Calories: make([]float64, n),
		Protein:  make([]float64, n),
		Carbs:    make([]float64, n),
		Fat:      make([]float64, n),
		Fiber:    make([]float64, n),
	}
}

func addMeal(s *models.PeriodSummary, i int, m models.Meal) {
	s.Calories[i] += float64(m.TotalCalories)
	s.Protein[i] += float64(m.TotalProtein)
	s.Carbs[i] += float64(m.TotalCarbs)
	s.Fat[i] += float64(m.TotalFat)
	s.Fiber[i] += float64(m.TotalFiber)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart is midnight of the most recent Sunday on or before t.
func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
