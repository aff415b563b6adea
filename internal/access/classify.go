package access

import "github.com/cascadia-research/foodaccess/internal/tract"

// Low access thresholds.
const (
	lowAccessCount = 500  // absolute head count beyond the distance cutoff
	lowAccessShare = 0.33 // share of tract population beyond the cutoff
)

// IsLowAccess applies the low access rule to one tract's attributes.
// Rules:
//   - urban: Urban flag set AND (lapophalf >= 500 OR lapophalf/POP2010 >= 0.33)
//   - rural: Rural flag set AND (lapop10 >= 500 OR lapop10/POP2010 >= 0.33)
//   - low access when either condition holds
//
// The share clause needs a known positive population; without one only the
// absolute count can classify a tract. A nil count fails its whole condition.
func IsLowAccess(a *tract.FoodAccess) bool {
	if a == nil {
		return false
	}
	urban := a.Urban && beyondThreshold(a.LAPopHalf, a.Population)
	rural := a.Rural && beyondThreshold(a.LAPop10, a.Population)
	return urban || rural
}

// beyondThreshold reports whether count crosses the absolute or the relative
// low access threshold.
func beyondThreshold(count, population *float64) bool {
	if count == nil {
		return false
	}
	if *count >= lowAccessCount {
		return true
	}
	if population == nil || *population <= 0 {
		return false
	}
	return *count / *population >= lowAccessShare
}

// LowAccessTracts returns the tracts drawn in the low access highlight
// layer: classified low access and with a known population.
func LowAccessTracts(d *tract.Dataset) []tract.Tract {
	var out []tract.Tract
	for _, t := range d.Tracts {
		if t.Access != nil && t.Access.Population != nil && IsLowAccess(t.Access) {
			out = append(out, t)
		}
	}
	return out
}
