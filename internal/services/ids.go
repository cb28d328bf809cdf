package services

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	idRandomLength = 6
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	maxIDAttempts  = 8
)

// Entity ID prefixes
const (
	PostIDPrefix         = "p"
	CommentIDPrefix      = "c"
	ReportIDPrefix       = "r"
	NotificationIDPrefix = "n"
)

// ErrIDExhausted is returned when no unused ID could be minted
var ErrIDExhausted = errors.New("could not allocate a unique id")

// IDGenerator mints entity IDs for a prefix
type IDGenerator interface {
	NewID(prefix string) string
}

// RandomIDGenerator mints "<prefix>-<unix millis base36>-<6 random base36>"
// IDs. Uniqueness rests on the random suffix; the service re-draws on the
// rare collision with a stored ID.
type RandomIDGenerator struct {
	now func() time.Time
}

func NewRandomIDGenerator(now func() time.Time) *RandomIDGenerator {
	return &RandomIDGenerator{now: now}
}

func (g *RandomIDGenerator) NewID(prefix string) string {
	suffix := make([]byte, idRandomLength)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return prefix + "-" + strconv.FormatInt(g.now().UnixMilli(), 36) + "-" + string(suffix)
}

// freshID draws IDs until one is not taken
func (s *ForumService) freshID(prefix string, taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.ids.NewID(prefix)
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
