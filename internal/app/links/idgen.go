package links

import (
	"encoding/base64"
	"math"
	"math/rand/v2"
	"strconv"
)

// GenerateID draws a uniform random 32-bit integer and encodes its decimal
// text form as URL-safe unpadded base64. Encoding the digits rather than the
// raw four bytes is deliberate: the historical id space is built on the
// textual representation, and existing ids decode back to decimal strings.
// Collisions are expected under load; the provisioning loop handles them.
func GenerateID() string {
	n := rand.Uint32N(math.MaxUint32)

	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(n), 10)))
}
