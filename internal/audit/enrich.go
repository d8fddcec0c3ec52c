package audit

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/blake2b"

	"dematkyc/pkg/requestcontext"
)

// Hasher produces keyed digests of identifiers that must not be logged in
// clear text.
type Hasher struct {
	key []byte
}

// NewHasher creates a Hasher. The key may be empty, which yields an unkeyed
// digest, and must be at most 64 bytes.
func NewHasher(key []byte) (*Hasher, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("audit hash key must be at most %d bytes", blake2b.Size)
	}
	return &Hasher{key: key}, nil
}

// Hash returns the hex BLAKE2b-256 digest of the upper-cased, trimmed value.
func (h *Hasher) Hash(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	d, err := blake2b.New256(h.key)
	if err != nil {
		// key length is checked in NewHasher
		panic(err)
	}
	d.Write([]byte(value))
	return hex.EncodeToString(d.Sum(nil))
}

// HashAll hashes each non-empty value, preserving order.
func (h *Hasher) HashAll(values ...string) []string {
	var out []string
	for _, v := range values {
		if digest := h.Hash(v); digest != "" {
			out = append(out, digest)
		}
	}
	return out
}

// DescribeClient summarises a User-Agent header as "Browser version on OS",
// with a mobile or bot marker when applicable.
func DescribeClient(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	ua := useragent.New(header)
	name, version := ua.Browser()

	var b strings.Builder
	b.WriteString(name)
	if version != "" {
		b.WriteString(" " + version)
	}
	if os := ua.OS(); os != "" {
		b.WriteString(" on " + os)
	}
	switch {
	case ua.Bot():
		b.WriteString(" (bot)")
	case ua.Mobile():
		b.WriteString(" (mobile)")
	}
	return strings.TrimSpace(b.String())
}

// Enrich fills the identity, correlation and client fields of ev from the
// request context, and assigns an ID and category when missing.
func Enrich(ctx context.Context, ev Event) Event {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = requestcontext.Now(ctx)
	}
	if ev.Category == "" {
		ev.Category = ev.Action.Category()
	}
	if ev.OperatorID == "" {
		ev.OperatorID = requestcontext.OperatorID(ctx)
	}
	if ev.RequestID == "" {
		ev.RequestID = requestcontext.RequestID(ctx)
	}
	if ev.ClientIP == "" {
		ev.ClientIP = requestcontext.ClientIP(ctx)
	}
	if ev.Client == "" {
		ev.Client = DescribeClient(requestcontext.UserAgent(ctx))
	}
	return ev
}
