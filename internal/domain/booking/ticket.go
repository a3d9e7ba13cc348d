package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TicketPrefix starts every customer-facing ticket identifier.
const TicketPrefix = "KC"

const ticketRandomChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// issuedGuard regenerates the random suffix when the same one was already
// handed out in the current millisecond, so in-process generation never
// collides no matter how fast tickets are requested. Across processes the
// 36^4 suffix space is the collision guard; a duplicate there has no
// financial or safety consequence and is caught by the unique index on
// insert.
var issuedGuard = struct {
	sync.Mutex
	millis   int64
	suffixes map[string]struct{}
}{suffixes: make(map[string]struct{})}

// NewTicketID creates a ticket identifier in the format
// "KC-<base36 millisecond timestamp>-<4 random base36 chars>". The timestamp
// makes tickets unique across time; the random suffix guards against
// collisions within the same millisecond.
func NewTicketID() (string, error) {
	issuedGuard.Lock()
	defer issuedGuard.Unlock()

	now := time.Now().UnixMilli()
	if now != issuedGuard.millis {
		issuedGuard.millis = now
		issuedGuard.suffixes = make(map[string]struct{})
	}

	for {
		suffix, err := randomSuffix()
		if err != nil {
			return "", err
		}
		if _, taken := issuedGuard.suffixes[suffix]; taken {
			continue
		}
		issuedGuard.suffixes[suffix] = struct{}{}

		ts := strings.ToUpper(strconv.FormatInt(now, 36))
		return TicketPrefix + "-" + ts + "-" + suffix, nil
	}
}

func randomSuffix() (string, error) {
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(ticketRandomChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket ID: %w", err)
		}
		suffix[i] = ticketRandomChars[n.Int64()]
	}
	return string(suffix), nil
}
