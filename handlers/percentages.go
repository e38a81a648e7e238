// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/enrollment-stats/models"
)

// ComputePercentages derives the stored percentages from one record's raw counts.
// A zero (or negative) denominator yields 0 for every percentage that depends on it.
func ComputePercentages(in models.EnrollmentInput) models.Percentages {
	// Totals are summed as float64 so large counts cannot wrap
	totalPopulation := sum(in.Male, in.Female)
	totalIncome := sum(in.LowIncome, in.MidIncome, in.HighIncome)
	totalAge := sum(in.Age18To25, in.Age25To35, in.Age35To45, in.Age45To55, in.Age56Plus)

	return models.Percentages{
		MalePercentage:   percentOf(in.Male, totalPopulation),
		FemalePercentage: percentOf(in.Female, totalPopulation),

		LowIncomePercentage:    percentOf(in.LowIncome, totalIncome),
		MediumIncomePercentage: percentOf(in.MidIncome, totalIncome),
		HighIncomePercentage:   percentOf(in.HighIncome, totalIncome),

		Age18To25Percentage: percentOf(in.Age18To25, totalAge),
		Age25To35Percentage: percentOf(in.Age25To35, totalAge),
		Age35To45Percentage: percentOf(in.Age35To45, totalAge),
		Age45To55Percentage: percentOf(in.Age45To55, totalAge),
		Age56PlusPercentage: percentOf(in.Age56Plus, totalAge),
	}
}

// NewEnrollment builds an unsaved record with its derived percentages filled in
func NewEnrollment(in models.EnrollmentInput) models.Enrollment {
	return models.Enrollment{
		EnrollmentInput: in,
		Percentages:     ComputePercentages(in),
	}
}

func sum(counts ...int) float64 {
	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	return total
}

func percentOf(part int, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / total * 100
}
