package checker

import "github.com/vietddude/airdrop-checker/internal/core/domain"

// Statistics counts results per status.
func Statistics(results []domain.EligibilityResult) domain.Statistics {
	s := domain.Statistics{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case domain.StatusEligible:
			s.Eligible++
		case domain.StatusNotEligible:
			s.NotEligible++
		case domain.StatusError:
			s.Errors++
		}
	}
	if s.Total > 0 {
		s.EligiblePercentage = float64(s.Eligible) / float64(s.Total) * 100
	}
	return s
}

// Filter returns the results with exactly the given status.
func Filter(results []domain.EligibilityResult, status domain.EligibilityStatus) []domain.EligibilityResult {
	filtered := make([]domain.EligibilityResult, 0, len(results))
	for _, r := range results {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
