package optim

import (
	"github.com/stride-ml/stride/internal/serialization"
)

// SaveState writes a state snapshot to path.
//
// Training can later resume from the snapshot via LoadState. The file is
// checksummed; a corrupted snapshot fails to load rather than silently
// resuming from garbage.
func SaveState(path string, s *State) error {
	return serialization.SaveFile(path, s.StateDict())
}

// LoadState reads a state snapshot written by SaveState.
func LoadState(path string) (*State, error) {
	dict, err := serialization.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s := &State{}
	if err := s.LoadStateDict(dict); err != nil {
		return nil, err
	}
	return s, nil
}
