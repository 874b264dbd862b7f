package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhowell/go-timetrack/internal/util"
)

// Validation failures returned by mutation operations. The settings
// snapshot is left unchanged whenever one of these is returned.
var (
	ErrEmptyName     = errors.New("name must not be empty")
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("not found")
)

// Persister saves a settings snapshot. Satisfied by store.Store.
type Persister interface {
	SaveSettings(Settings) error
}

// Service owns the canonical settings snapshot. Mutations validate,
// apply, then persist; callers read through Snapshot and re-fetch after
// mutating rather than holding long-lived references.
type Service struct {
	settings  Settings
	persister Persister
}

// NewService wraps a loaded snapshot. persister may be nil for
// read-only or in-memory use.
func NewService(s Settings, persister Persister) *Service {
	return &Service{settings: s, persister: persister}
}

// Snapshot returns a copy of the current settings.
func (svc *Service) Snapshot() Settings {
	return svc.settings.clone()
}

func (svc *Service) persist() error {
	if svc.persister == nil {
		return nil
	}
	return svc.persister.SaveSettings(svc.settings)
}

// apply runs a mutation against a working copy and commits it only if
// both the mutation and the persist succeed.
func (svc *Service) apply(mutate func(*Settings) error) error {
	work := svc.settings.clone()
	if err := mutate(&work); err != nil {
		return err
	}
	prev := svc.settings
	svc.settings = work
	if err := svc.persist(); err != nil {
		svc.settings = prev
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// AddSphere creates a new active sphere. The first sphere ever created
// becomes the default.
func (svc *Service) AddSphere(name string) error {
	return svc.apply(func(s *Settings) error {
		name, err := validName(name)
		if err != nil {
			return err
		}
		if s.hasSphere(name) {
			return fmt.Errorf("sphere %q: %w", name, ErrDuplicateName)
		}
		s.Spheres = append(s.Spheres, Sphere{
			Name:      name,
			IsDefault: len(s.Spheres) == 0,
			Active:    true,
		})
		util.LogDebugf("Added sphere %q", name)
		return nil
	})
}

// RenameSphere renames a sphere and cascades the new name into every
// project referencing it.
func (svc *Service) RenameSphere(oldName, newName string) error {
	return svc.apply(func(s *Settings) error {
		newName, err := validName(newName)
		if err != nil {
			return err
		}
		if newName != oldName && s.hasSphere(newName) {
			return fmt.Errorf("sphere %q: %w", newName, ErrDuplicateName)
		}
		idx := -1
		for i := range s.Spheres {
			if s.Spheres[i].Name == oldName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("sphere %q: %w", oldName, ErrNotFound)
		}
		s.Spheres[idx].Name = newName
		for i := range s.Projects {
			if s.Projects[i].Sphere == oldName {
				s.Projects[i].Sphere = newName
			}
		}
		util.LogDebugf("Renamed sphere %q to %q", oldName, newName)
		return nil
	})
}

// SetSphereActive archives or restores a sphere. Archiving deliberately
// does not touch the Active flags of the sphere's projects; a restored
// sphere comes back with its project set intact.
func (svc *Service) SetSphereActive(name string, active bool) error {
	return svc.apply(func(s *Settings) error {
		for i := range s.Spheres {
			if s.Spheres[i].Name == name {
				s.Spheres[i].Active = active
				return nil
			}
		}
		return fmt.Errorf("sphere %q: %w", name, ErrNotFound)
	})
}

// SetDefaultSphere makes the named sphere the single default.
func (svc *Service) SetDefaultSphere(name string) error {
	return svc.apply(func(s *Settings) error {
		found := false
		for i := range s.Spheres {
			isTarget := s.Spheres[i].Name == name
			s.Spheres[i].IsDefault = isTarget
			found = found || isTarget
		}
		if !found {
			return fmt.Errorf("sphere %q: %w", name, ErrNotFound)
		}
		return nil
	})
}

// DeleteSphere removes a sphere and every project that references it.
func (svc *Service) DeleteSphere(name string) error {
	return svc.apply(func(s *Settings) error {
		idx := -1
		for i := range s.Spheres {
			if s.Spheres[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("sphere %q: %w", name, ErrNotFound)
		}
		s.Spheres = append(s.Spheres[:idx], s.Spheres[idx+1:]...)
		kept := s.Projects[:0]
		removed := 0
		for _, p := range s.Projects {
			if p.Sphere == name {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		s.Projects = kept
		util.LogDebugf("Deleted sphere %q and %d projects", name, removed)
		return nil
	})
}

// AddProject creates a project under an existing sphere. The first
// project in a sphere becomes that sphere's default.
func (svc *Service) AddProject(name, sphere, note, goal string) error {
	return svc.apply(func(s *Settings) error {
		name, err := validName(name)
		if err != nil {
			return err
		}
		if !s.hasSphere(sphere) {
			return fmt.Errorf("sphere %q: %w", sphere, ErrNotFound)
		}
		if s.hasProject(name, sphere) {
			return fmt.Errorf("project %q: %w", name, ErrDuplicateName)
		}
		s.Projects = append(s.Projects, Project{
			Name:      name,
			Sphere:    sphere,
			IsDefault: len(s.SphereProjects(sphere)) == 0,
			Active:    true,
			Note:      note,
			Goal:      goal,
		})
		return nil
	})
}

// RenameProject renames a project within its sphere.
func (svc *Service) RenameProject(oldName, newName, sphere string) error {
	return svc.apply(func(s *Settings) error {
		newName, err := validName(newName)
		if err != nil {
			return err
		}
		if newName != oldName && s.hasProject(newName, sphere) {
			return fmt.Errorf("project %q: %w", newName, ErrDuplicateName)
		}
		for i := range s.Projects {
			if s.Projects[i].Name == oldName && s.Projects[i].Sphere == sphere {
				s.Projects[i].Name = newName
				return nil
			}
		}
		return fmt.Errorf("project %q: %w", oldName, ErrNotFound)
	})
}

// SetProjectActive archives or restores a project.
func (svc *Service) SetProjectActive(name, sphere string, active bool) error {
	return svc.apply(func(s *Settings) error {
		for i := range s.Projects {
			if s.Projects[i].Name == name && s.Projects[i].Sphere == sphere {
				s.Projects[i].Active = active
				return nil
			}
		}
		return fmt.Errorf("project %q: %w", name, ErrNotFound)
	})
}

// SetDefaultProject makes the named project the single default within
// its sphere. Defaults in other spheres are untouched.
func (svc *Service) SetDefaultProject(name, sphere string) error {
	return svc.apply(func(s *Settings) error {
		found := false
		for i := range s.Projects {
			if s.Projects[i].Sphere != sphere {
				continue
			}
			isTarget := s.Projects[i].Name == name
			s.Projects[i].IsDefault = isTarget
			found = found || isTarget
		}
		if !found {
			return fmt.Errorf("project %q: %w", name, ErrNotFound)
		}
		return nil
	})
}

// DeleteProject removes a project.
func (svc *Service) DeleteProject(name, sphere string) error {
	return svc.apply(func(s *Settings) error {
		for i := range s.Projects {
			if s.Projects[i].Name == name && s.Projects[i].Sphere == sphere {
				s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("project %q: %w", name, ErrNotFound)
	})
}

// AddBreakAction creates a break action. The first one becomes the
// global default.
func (svc *Service) AddBreakAction(name, notes string) error {
	return svc.apply(func(s *Settings) error {
		name, err := validName(name)
		if err != nil {
			return err
		}
		if s.hasBreakAction(name) {
			return fmt.Errorf("break action %q: %w", name, ErrDuplicateName)
		}
		s.BreakActions = append(s.BreakActions, BreakAction{
			Name:      name,
			IsDefault: len(s.BreakActions) == 0,
			Active:    true,
			Notes:     notes,
		})
		return nil
	})
}

// RenameBreakAction renames a break action.
func (svc *Service) RenameBreakAction(oldName, newName string) error {
	return svc.apply(func(s *Settings) error {
		newName, err := validName(newName)
		if err != nil {
			return err
		}
		if newName != oldName && s.hasBreakAction(newName) {
			return fmt.Errorf("break action %q: %w", newName, ErrDuplicateName)
		}
		for i := range s.BreakActions {
			if s.BreakActions[i].Name == oldName {
				s.BreakActions[i].Name = newName
				return nil
			}
		}
		return fmt.Errorf("break action %q: %w", oldName, ErrNotFound)
	})
}

// SetBreakActionActive archives or restores a break action.
func (svc *Service) SetBreakActionActive(name string, active bool) error {
	return svc.apply(func(s *Settings) error {
		for i := range s.BreakActions {
			if s.BreakActions[i].Name == name {
				s.BreakActions[i].Active = active
				return nil
			}
		}
		return fmt.Errorf("break action %q: %w", name, ErrNotFound)
	})
}

// SetDefaultBreakAction makes the named action the single global default.
func (svc *Service) SetDefaultBreakAction(name string) error {
	return svc.apply(func(s *Settings) error {
		found := false
		for i := range s.BreakActions {
			isTarget := s.BreakActions[i].Name == name
			s.BreakActions[i].IsDefault = isTarget
			found = found || isTarget
		}
		if !found {
			return fmt.Errorf("break action %q: %w", name, ErrNotFound)
		}
		return nil
	})
}

// DeleteBreakAction removes a break action.
func (svc *Service) DeleteBreakAction(name string) error {
	return svc.apply(func(s *Settings) error {
		for i := range s.BreakActions {
			if s.BreakActions[i].Name == name {
				s.BreakActions = append(s.BreakActions[:i], s.BreakActions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("break action %q: %w", name, ErrNotFound)
	})
}

// SetCardRanges replaces the dashboard card range names.
func (svc *Service) SetCardRanges(ranges []string) error {
	return svc.apply(func(s *Settings) error {
		s.AnalysisSettings.CardRanges = append([]string(nil), ranges...)
		return nil
	})
}
