package kernel

import "slices"

// Skill is an opaque capability tag.
type Skill uint32

// Skills is an immutable set of capability tags. Matching against vehicle
// capabilities happens outside the job model.
type Skills struct {
	set map[Skill]struct{}
}

// NewSkills builds a set; duplicates collapse.
func NewSkills(skills ...Skill) Skills {
	set := make(map[Skill]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return Skills{set: set}
}

func (s Skills) Contains(skill Skill) bool {
	_, ok := s.set[skill]
	return ok
}

// Slice returns the tags in ascending order.
func (s Skills) Slice() []Skill {
	out := make([]Skill, 0, len(s.set))
	for skill := range s.set {
		out = append(out, skill)
	}
	slices.Sort(out)
	return out
}
