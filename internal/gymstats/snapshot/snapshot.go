package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/users"
)

// local storage keys of the web client
const (
	KeyExercises = "gym-exercises"
	KeyWorkouts  = "gym-workouts"
	KeyUser      = "gym-user"
	KeyUsers     = "gym-users"
)

// StoredUser is a gym-users entry. Password is plain text on the way in and
// never written out.
type StoredUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type Snapshot struct {
	Exercises []catalog.Exercise
	Workouts  []workouts.Workout
	User      *users.User
	Users     []StoredUser
}

// Decode reads a local storage dump. Values may be raw JSON or JSON encoded
// into a string, the way local storage keeps them. Unknown keys are ignored.
func Decode(r io.Reader) (Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	var s Snapshot
	for key, target := range map[string]any{
		KeyExercises: &s.Exercises,
		KeyWorkouts:  &s.Workouts,
		KeyUser:      &s.User,
		KeyUsers:     &s.Users,
	} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := decodeValue(value, target); err != nil {
			return Snapshot{}, fmt.Errorf("decode snapshot [%s]: %w", key, err)
		}
	}

	return s, nil
}

func decodeValue(value json.RawMessage, target any) error {
	value = bytes.TrimSpace(value)
	if len(value) > 0 && value[0] == '"' {
		var inner string
		if err := json.Unmarshal(value, &inner); err != nil {
			return err
		}
		value = []byte(inner)
	}
	if len(value) == 0 {
		return nil
	}
	return json.Unmarshal(value, target)
}

// Encode writes the snapshot with raw JSON values. Passwords are dropped.
func Encode(w io.Writer, s Snapshot) error {
	exercises := s.Exercises
	if exercises == nil {
		exercises = []catalog.Exercise{}
	}
	all := s.Workouts
	if all == nil {
		all = []workouts.Workout{}
	}
	storedUsers := make([]StoredUser, 0, len(s.Users))
	for _, u := range s.Users {
		u.Password = ""
		storedUsers = append(storedUsers, u)
	}

	doc := map[string]any{
		KeyExercises: exercises,
		KeyWorkouts:  all,
		KeyUser:      s.User,
		KeyUsers:     storedUsers,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
