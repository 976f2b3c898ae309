// Package selection tracks which modules are active in a workspace.
//
// In single mode at most one id is selected and selecting replaces it. In multi mode
// selecting toggles membership and new ids are appended, so the order of IDs is the
// order modules are numbered in and composed in.
package selection

import "slices"

type State struct {
	ids   []string
	multi bool
}

func New() *State {
	return &State{}
}

func (s *State) Select(id string) {
	if !s.multi {
		s.ids = []string{id}
		return
	}

	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

// Choose makes id selected without ever deselecting it. In single mode it replaces the
// selection, in multi mode it appends id unless already present.
func (s *State) Choose(id string) {
	if !s.multi {
		s.ids = []string{id}
		return
	}

	if !slices.Contains(s.ids, id) {
		s.ids = append(s.ids, id)
	}
}

// SetMultiSelect switches modes. Leaving multi mode keeps only the most recently added id.
func (s *State) SetMultiSelect(enabled bool) {
	s.multi = enabled
	if !enabled && len(s.ids) > 1 {
		s.ids = []string{s.ids[len(s.ids)-1]}
	}
}

func (s *State) Remove(id string) {
	s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
}

func (s *State) Reset() {
	s.ids = nil
}

func (s *State) IDs() []string {
	return slices.Clone(s.ids)
}

func (s *State) Multi() bool {
	return s.multi
}

func (s *State) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Position returns the 1-based display number of id, or 0 when it is not selected.
func (s *State) Position(id string) int {
	return slices.Index(s.ids, id) + 1
}

func (s *State) Len() int {
	return len(s.ids)
}
