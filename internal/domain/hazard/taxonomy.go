package hazard

// Taxonomy holds the admin-configurable reporting vocabulary: hazard
// categories with their subcategories, tags, stations and departments.
// Defaults below cover airside ground-handling operations; deployments
// override them via a taxonomy file.
type Taxonomy struct {
	Categories  []Category `toml:"categories"`
	Tags        []string   `toml:"tags"`
	Stations    []string   `toml:"stations"`
	Departments []string   `toml:"departments"`
}

// Category is one hazard area with its refining subcategories.
type Category struct {
	Name          string   `toml:"name"`
	Subcategories []string `toml:"subcategories"`
}

// HasCategory reports whether name is a known category.
func (t Taxonomy) HasCategory(name string) bool {
	for _, c := range t.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// DefaultTaxonomy returns the built-in ground-handling taxonomy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: []Category{
			{
				Name: "Airside / Ramp",
				Subcategories: []string{
					"FOD (foreign object debris) and housekeeping",
					"Vehicle-pedestrian conflict, speeding, blind spots",
					"Aircraft stand safety: wingtip clearance, cone placement, stand markings",
					"Jet blast/prop wash exposure",
					"Lighting/marking deficiencies; congestion",
					"Slips/trips/falls (hoses, cables, wet surfaces)",
				},
			},
			{
				Name: "Aircraft servicing",
				Subcategories: []string{
					"Refueling/fueling safety (bonding/earthing, ignition sources, spill control)",
					"Docking/marshalling/guidance communication",
					"Towing/pushback (tug condition, bypass pin, headset/radio comms, clearance)",
					"Ground power (GPU) and pre-conditioned air (PCA) connections",
					"Utility pits, cables and hoses",
					"Lavatory service hazards; catering truck positioning",
					"Passenger boarding bridge / stairs positioning",
				},
			},
			{
				Name: "Cargo, baggage & loading",
				Subcategories: []string{
					"Cargo loading/unloading (ULD handling, restraint, pinch points)",
					"Manual handling ergonomics and lifting injuries",
					"Belt loader / container loader interface hazards",
					"Dangerous goods awareness flags",
				},
			},
			{
				Name: "Ground Support Equipment (GSE)",
				Subcategories: []string{
					"Equipment defects or maintenance issues",
					"Incorrect equipment selection for aircraft type",
					"Brake failure/rolling equipment",
					"Battery charging hazards",
				},
			},
			{
				Name: "Security & Environment",
				Subcategories: []string{
					"Airside access breach / suspicious item",
					"Spills (fuel/oil), waste handling, environmental release",
					"Wildlife hazards (if applicable)",
				},
			},
			{
				Name:          "Other",
				Subcategories: []string{"Other"},
			},
		},
		Tags:        []string{"Safety", "Security", "Environment", "Quality"},
		Stations:    []string{"Station A", "Station B", "Main Ramp"},
		Departments: []string{"Ramp", "Cargo", "GSE", "Safety"},
	}
}
