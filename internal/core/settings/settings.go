package settings

// Sphere is a top-level organizational dimension (e.g. Work, Personal).
// At most one sphere carries IsDefault.
type Sphere struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	Active    bool   `json:"active"`
}

// Project belongs to exactly one sphere. Defaults are scoped per
// sphere: at most one default project within each sphere.
type Project struct {
	Name      string `json:"name"`
	Sphere    string `json:"sphere"`
	IsDefault bool   `json:"is_default"`
	Active    bool   `json:"active"`
	Note      string `json:"note,omitempty"`
	Goal      string `json:"goal,omitempty"`
}

// BreakAction names a kind of break. At most one default across the
// whole set, regardless of sphere.
type BreakAction struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	Active    bool   `json:"active"`
	Notes     string `json:"notes,omitempty"`
}

// IdleSettings configures the external idle detector. The core only
// round-trips it.
type IdleSettings struct {
	ThresholdMinutes int `json:"threshold_minutes"`
}

// AnalysisSettings drives the dashboard summary cards: one named date
// range per card.
type AnalysisSettings struct {
	CardRanges []string `json:"card_ranges"`
}

// Settings is the full settings.json document.
type Settings struct {
	Spheres          []Sphere         `json:"spheres"`
	Projects         []Project        `json:"projects"`
	BreakActions     []BreakAction    `json:"break_actions"`
	IdleSettings     IdleSettings     `json:"idle_settings"`
	AnalysisSettings AnalysisSettings `json:"analysis_settings"`
}

// Default returns the settings a fresh installation starts from.
func Default() Settings {
	return Settings{
		Spheres: []Sphere{
			{Name: "Work", IsDefault: true, Active: true},
		},
		Projects: []Project{
			{Name: "General", Sphere: "Work", IsDefault: true, Active: true},
		},
		BreakActions: []BreakAction{
			{Name: "Break", IsDefault: true, Active: true},
		},
		IdleSettings: IdleSettings{ThresholdMinutes: 5},
		AnalysisSettings: AnalysisSettings{
			CardRanges: []string{"Today", "This Week", "This Month"},
		},
	}
}

// DefaultSphere returns the sphere flagged as default, if any.
func (s Settings) DefaultSphere() (Sphere, bool) {
	for _, sp := range s.Spheres {
		if sp.IsDefault {
			return sp, true
		}
	}
	return Sphere{}, false
}

// DefaultProject returns the default project within the given sphere.
func (s Settings) DefaultProject(sphere string) (Project, bool) {
	for _, p := range s.Projects {
		if p.Sphere == sphere && p.IsDefault {
			return p, true
		}
	}
	return Project{}, false
}

// DefaultBreakAction returns the globally default break action, if any.
func (s Settings) DefaultBreakAction() (BreakAction, bool) {
	for _, a := range s.BreakActions {
		if a.IsDefault {
			return a, true
		}
	}
	return BreakAction{}, false
}

// SphereProjects returns the projects belonging to the given sphere.
func (s *Settings) SphereProjects(sphere string) []Project {
	var out []Project
	for _, p := range s.Projects {
		if p.Sphere == sphere {
			out = append(out, p)
		}
	}
	return out
}

func (s *Settings) hasSphere(name string) bool {
	for _, sp := range s.Spheres {
		if sp.Name == name {
			return true
		}
	}
	return false
}

func (s *Settings) hasProject(name, sphere string) bool {
	for _, p := range s.Projects {
		if p.Name == name && p.Sphere == sphere {
			return true
		}
	}
	return false
}

func (s *Settings) hasBreakAction(name string) bool {
	for _, a := range s.BreakActions {
		if a.Name == name {
			return true
		}
	}
	return false
}

// clone deep-copies the settings so service snapshots never alias the
// canonical slices.
func (s *Settings) clone() Settings {
	out := *s
	out.Spheres = append([]Sphere(nil), s.Spheres...)
	out.Projects = append([]Project(nil), s.Projects...)
	out.BreakActions = append([]BreakAction(nil), s.BreakActions...)
	out.AnalysisSettings.CardRanges = append([]string(nil), s.AnalysisSettings.CardRanges...)
	return out
}
