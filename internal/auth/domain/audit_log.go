package domain

import (
	"encoding/hex"
	"strings"
	"time"
)

// auditSeparator separates the fields of an audit line.
const auditSeparator = " - "

// AuditLog is one line of the append-only audit log.
//
// Detail carries a token or a masked PAN, never a full PAN. Line renders it as
//
//	<RFC3339Nano UTC> - <EVENT> - <detail> - <hex HMAC>
type AuditLog struct {
	Event     AuditEvent
	Detail    string
	CreatedAt time.Time
	Signature []byte
}

// NewAuditLog creates an unsigned entry stamped with the current UTC time.
// Line breaks in detail are replaced so an entry always stays on one line.
func NewAuditLog(event AuditEvent, detail string) *AuditLog {
	return &AuditLog{
		Event:     event,
		Detail:    sanitizeDetail(detail),
		CreatedAt: time.Now().UTC(),
	}
}

// Line renders the entry without a trailing newline.
func (a *AuditLog) Line() string {
	var sb strings.Builder
	sb.WriteString(a.CreatedAt.UTC().Format(time.RFC3339Nano))
	sb.WriteString(auditSeparator)
	sb.WriteString(string(a.Event))
	sb.WriteString(auditSeparator)
	sb.WriteString(a.Detail)
	sb.WriteString(auditSeparator)
	sb.WriteString(hex.EncodeToString(a.Signature))
	return sb.String()
}

// ParseAuditLine parses a line produced by Line. The detail may itself contain the
// separator: the timestamp and event are taken from the left, the signature from
// the right.
func ParseAuditLine(line string) (*AuditLog, error) {
	line = strings.TrimRight(line, "\r\n")

	ts, rest, ok := strings.Cut(line, auditSeparator)
	if !ok {
		return nil, ErrMalformedAuditLine
	}
	event, rest, ok := strings.Cut(rest, auditSeparator)
	if !ok {
		return nil, ErrMalformedAuditLine
	}
	idx := strings.LastIndex(rest, auditSeparator)
	if idx < 0 {
		return nil, ErrMalformedAuditLine
	}
	detail, sigHex := rest[:idx], rest[idx+len(auditSeparator):]

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, ErrMalformedAuditLine
	}
	auditEvent := AuditEvent(event)
	if err := auditEvent.Validate(); err != nil {
		return nil, err
	}
	signature, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, ErrMalformedAuditLine
	}

	return &AuditLog{
		Event:     auditEvent,
		Detail:    detail,
		CreatedAt: createdAt.UTC(),
		Signature: signature,
	}, nil
}

func sanitizeDetail(detail string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(detail)
}

// AuditVerification summarizes a signature check over a whole audit log.
// Line numbers are 1-based.
type AuditVerification struct {
	Total          int
	Valid          int
	InvalidLines   []int
	MalformedLines []int
}

// OK reports whether every line parsed and verified.
func (v *AuditVerification) OK() bool {
	return len(v.InvalidLines) == 0 && len(v.MalformedLines) == 0
}
