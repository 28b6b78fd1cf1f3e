package model

// Plan ties a crop list and its settings together for save/load.
type Plan struct {
	Name     string       `json:"name"`
	Crops    []Crop       `json:"crops"`
	Settings PlanSettings `json:"settings"`
}

// cropSpec describes one built-in crop: spacing is the recommended distance
// between plants in inches (radius is half of it).
type cropSpec struct {
	name      string
	spacing   float64
	count     int
	trellised bool
}

// defaultCrops is the per-family planting list the planner ships with.
var defaultCrops = []cropSpec{
	{"asparagus", 9, 25, false},
	{"broccoli", 18, 15, false},
	{"bush green beans", 6, 50, false},
	{"cabbage", 12, 10, false},
	{"carrots", 3, 120, false},
	{"celery", 6, 10, false},
	{"sweetcorn", 12, 100, false},
	{"cucumbers", 12, 4, true},
	{"dried beans", 6, 50, true},
	{"garlic", 4, 50, false},
	{"green onions", 3, 15, false},
	{"kale", 12, 40, false},
	{"lettuce", 12, 40, false},
	{"onion bulbs", 5, 50, false},
	{"peppers", 12, 7, false},
	{"potatoes", 12, 50, false},
	{"shelling peas", 3, 100, true},
	{"snap peas", 5, 40, true},
	{"summer squash", 12, 2, false},
	{"sweet potatoes", 12, 8, false},
	{"tomatoes", 12, 12, true},
	{"winter squash", 12, 4, false},
}

// DefaultPlan returns the built-in family garden plan with default settings.
func DefaultPlan() Plan {
	crops := make([]Crop, 0, len(defaultCrops))
	for _, spec := range defaultCrops {
		crop := NewCrop(spec.name, spec.spacing/2, spec.count)
		crop.Trellised = spec.trellised
		crops = append(crops, crop)
	}
	return Plan{
		Name:     "Family garden",
		Crops:    crops,
		Settings: DefaultSettings(),
	}
}
