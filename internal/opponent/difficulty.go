package opponent

import (
	"strings"

	"github.com/pkg/errors"
)

type Difficulty uint8

const (
	Stupid Difficulty = iota
	Easy
	Medium
)

var difficultyNames = [...]string{"Stupid", "Easy", "Medium"}

// Difficulties lists every level from weakest to strongest.
func Difficulties() []Difficulty { return []Difficulty{Stupid, Easy, Medium} }

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "Unknown"
}

// ParseDifficulty accepts any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), nil
		}
	}
	return Stupid, errors.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if int(d) >= len(difficultyNames) {
		return nil, errors.Errorf("unknown difficulty %d", uint8(d))
	}
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
