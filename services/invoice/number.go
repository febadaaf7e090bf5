package invoice

import (
	"crypto/rand"
	"fmt"
	"time"
)

const suffixCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewInvoiceNumber produces a human-readable invoice reference of the form
// INV-<year><month>-<6 random base36 chars>, e.g. INV-202608-K3F9QD.
// Uniqueness rests on suffix entropy only; invoice numbers are informational
// and never used as keys.
func NewInvoiceNumber() string {
	now := time.Now()

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// time-derived suffix rather than panicking in a read path.
		for i := range buf {
			buf[i] = suffixCharset[int(now.UnixNano()>>uint(i*8))%len(suffixCharset)]
		}
	} else {
		for i := range buf {
			buf[i] = suffixCharset[int(buf[i])%len(suffixCharset)]
		}
	}

	return fmt.Sprintf("INV-%d%02d-%s", now.Year(), int(now.Month()), string(buf))
}
