// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/enrollment-stats/models"
)

// EmptyStatistics is the response for a filter that matches nothing
func EmptyStatistics() models.Statistics {
	return models.Statistics{
		EnrollmentByYear: models.EnrollmentByYear{},
	}
}

// Aggregate computes statistics over a set of stored records.
//
// Gender, income and age figures are the unweighted mean of each record's
// stored percentage, so a small county counts as much as a large one.
// Enrollment percentages come from summed counts.
func Aggregate(records []models.Enrollment) models.Statistics {
	stats := EmptyStatistics()
	if len(records) == 0 {
		return stats
	}

	var (
		sum    models.Percentages
		health int64
		dental int64
		byYear = models.EnrollmentByYear{}
	)

	for _, e := range records {
		sum.MalePercentage += e.MalePercentage
		sum.FemalePercentage += e.FemalePercentage
		sum.LowIncomePercentage += e.LowIncomePercentage
		sum.MediumIncomePercentage += e.MediumIncomePercentage
		sum.HighIncomePercentage += e.HighIncomePercentage
		sum.Age18To25Percentage += e.Age18To25Percentage
		sum.Age25To35Percentage += e.Age25To35Percentage
		sum.Age35To45Percentage += e.Age35To45Percentage
		sum.Age45To55Percentage += e.Age45To55Percentage
		sum.Age56PlusPercentage += e.Age56PlusPercentage

		h := int64(e.HealthEnrollment)
		d := int64(e.DentalEnrollment)
		health += h
		dental += d

		year := byYear[e.Year]
		year.Health += h
		year.Dental += d
		year.Total += h + d
		byYear[e.Year] = year
	}

	n := float64(len(records))

	stats.GenderPercentages = models.GenderPercentages{
		MalePercentage:   sum.MalePercentage / n,
		FemalePercentage: sum.FemalePercentage / n,
	}

	total := health + dental
	if total > 0 {
		stats.EnrollmentPercentages = models.EnrollmentPercentages{
			HealthEnrollmentPercentage: float64(health) / float64(total) * 100,
			DentalEnrollmentPercentage: float64(dental) / float64(total) * 100,
		}
	}

	stats.IncomeCategories = models.IncomeCategories{
		LowIncomePercentage:    sum.LowIncomePercentage / n,
		MediumIncomePercentage: sum.MediumIncomePercentage / n,
		HighIncomePercentage:   sum.HighIncomePercentage / n,
	}

	stats.AgeGroupPercentages = models.AgeGroupPercentages{
		Age18To25: sum.Age18To25Percentage / n,
		Age25To35: sum.Age25To35Percentage / n,
		Age35To45: sum.Age35To45Percentage / n,
		Age45To55: sum.Age45To55Percentage / n,
		Age56Plus: sum.Age56PlusPercentage / n,
	}

	stats.EnrollmentByYear = byYear

	return stats
}
