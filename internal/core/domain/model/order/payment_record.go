package order

import (
	"bytes"
	"encoding/json"
	"maps"

	"orderdesk/internal/pkg/errs"
)

// PaymentRecord is a structured payload returned by the payment gateway
// (the masked credit card or the transaction). The order stores it as the
// gateway returned it and never interprets its fields.
type PaymentRecord struct {
	fields map[string]any
}

// NewPaymentRecord copies fields into a record.
func NewPaymentRecord(fields map[string]any) PaymentRecord {
	if len(fields) == 0 {
		return EmptyPaymentRecord()
	}
	return PaymentRecord{fields: maps.Clone(fields)}
}

// EmptyPaymentRecord is the value of unpaid orders.
func EmptyPaymentRecord() PaymentRecord {
	return PaymentRecord{fields: map[string]any{}}
}

// DecodePaymentRecord restores a record persisted as a JSON object. Empty
// input and JSON null decode to the empty record; anything that is not a JSON
// object is reported as a DataIsCorruptedError for paramName.
func DecodePaymentRecord(paramName string, raw []byte) (PaymentRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return EmptyPaymentRecord(), nil
	}

	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return PaymentRecord{}, errs.NewDataIsCorruptedErrorWithCause(paramName, err)
	}

	return NewPaymentRecord(fields), nil
}

// IsEmpty reports whether the record has no fields.
func (r PaymentRecord) IsEmpty() bool {
	return len(r.fields) == 0
}

// Fields returns a copy of the payload.
func (r PaymentRecord) Fields() map[string]any {
	if r.fields == nil {
		return map[string]any{}
	}
	return maps.Clone(r.fields)
}

// MarshalJSON encodes the record as a JSON object; the empty record is {}.
func (r PaymentRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}
