package bootstrap

import (
	"math"
	"math/rand"
	"time"

	"anoa.com/lebenslauf/internal/entity"
)

// ContributionSeed keeps the generated graph identical across runs.
const ContributionSeed = 42

// GenerateContributions builds one row per day between from and to inclusive.
// Weekdays are busier than weekends and the counts are scaled so they add up
// to exactly total.
func GenerateContributions(from, to time.Time, total int, seed int64) []entity.GitHubContribution {
	rng := rand.New(rand.NewSource(seed))

	from = truncateDay(from)
	to = truncateDay(to)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil
	}

	counts := make([]int, len(days))
	sum := 0
	for i, d := range days {
		counts[i] = rollCount(rng, d.Weekday())
		sum += counts[i]
	}

	if sum > 0 {
		scale := float64(total) / float64(sum)
		sum = 0
		for i := range counts {
			counts[i] = int(math.Round(float64(counts[i]) * scale))
			sum += counts[i]
		}
	}

	for diff := total - sum; diff != 0; {
		i := rng.Intn(len(counts))
		switch {
		case diff > 0:
			counts[i]++
			diff--
		case counts[i] > 0:
			counts[i]--
			diff++
		}
	}

	out := make([]entity.GitHubContribution, len(days))
	for i, d := range days {
		_, week := d.ISOWeek()
		out[i] = entity.GitHubContribution{
			Date:       d,
			Count:      counts[i],
			WeekNumber: week,
			DayOfWeek:  int(d.Weekday()),
		}
	}
	return out
}

func rollCount(rng *rand.Rand, weekday time.Weekday) int {
	roll := rng.Float64()

	if weekday == time.Saturday || weekday == time.Sunday {
		switch {
		case roll < 0.40:
			return 0
		case roll < 0.70:
			return 1 + rng.Intn(3)
		case roll < 0.90:
			return 4 + rng.Intn(6)
		default:
			return 10 + rng.Intn(10)
		}
	}

	switch {
	case roll < 0.15:
		return 0
	case roll < 0.40:
		return 1 + rng.Intn(4)
	case roll < 0.70:
		return 5 + rng.Intn(8)
	case roll < 0.90:
		return 13 + rng.Intn(13)
	default:
		return 26 + rng.Intn(25)
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
