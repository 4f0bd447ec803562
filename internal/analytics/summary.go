package analytics

import "sort"

type YearBucket struct {
	Year       int `json:"year"`
	Transfers  int `json:"transfers"`
	Promotions int `json:"promotions"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalTransfers     int              `json:"total_transfers"`
	TotalPromotions    int              `json:"total_promotions"`
	TotalCityTransfers int              `json:"total_city_transfers"`
	YearBuckets        []YearBucket     `json:"year_buckets"`
	TopDestinations    []CityCount      `json:"top_destinations"`
	TopSources         []CityCount      `json:"top_sources"`
	Recent             []TransferRecord `json:"recent"`
}

// ComputeSummary aggregates a transfer stream: totals, ascending year
// buckets, top-N cities in and out, and the most recent K records.
func ComputeSummary(transfers []TransferRecord, topN, recentK int) Summary {
	s := Summary{TotalTransfers: len(transfers)}

	years := map[int]*YearBucket{}
	dest := map[string]int{}
	src := map[string]int{}

	for _, t := range transfers {
		if t.IsPromotion {
			s.TotalPromotions++
		}
		if t.IsCityTransfer {
			s.TotalCityTransfers++
		}

		b, ok := years[t.Year]
		if !ok {
			b = &YearBucket{Year: t.Year}
			years[t.Year] = b
		}
		b.Transfers++
		if t.IsPromotion {
			b.Promotions++
		}

		if t.ToCity != "" {
			dest[t.ToCity]++
		}
		if t.FromCity != "" {
			src[t.FromCity]++
		}
	}

	s.YearBuckets = make([]YearBucket, 0, len(years))
	for _, b := range years {
		s.YearBuckets = append(s.YearBuckets, *b)
	}
	sort.Slice(s.YearBuckets, func(i, j int) bool {
		return s.YearBuckets[i].Year < s.YearBuckets[j].Year
	})

	s.TopDestinations = topCities(dest, topN)
	s.TopSources = topCities(src, topN)
	s.Recent = recentTransfers(transfers, recentK)

	return s
}

func topCities(counts map[string]int, n int) []CityCount {
	out := make([]CityCount, 0, len(counts))
	for city, count := range counts {
		out = append(out, CityCount{City: city, Count: count})
	}
	// Ties break alphabetically so repeated runs agree.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func recentTransfers(transfers []TransferRecord, k int) []TransferRecord {
	out := make([]TransferRecord, len(transfers))
	copy(out, transfers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
