package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Feed field names
const (
	RecordFieldTransactionID = "transactionId"
	RecordFieldCustomerName  = "customerName"
	RecordFieldName          = "name"
	RecordFieldDate          = "date"
	RecordFieldPrice         = "price"
)

// recordFields marks which known fields a decoded record carried with the expected JSON type
type recordFields uint8

const (
	fieldTransactionID recordFields = 1 << iota
	fieldCustomerName
	fieldDate
	fieldPrice

	// fieldsDecoded is set on records built by UnmarshalJSON
	fieldsDecoded
)

// TransactionRecord is a single rewards transaction as delivered by the remote feed.
// Fields the dashboard does not interpret are kept in Extra and written back out unchanged.
// A known field holding an unexpected JSON type is kept in Extra under its own key.
type TransactionRecord struct {
	TransactionID string          `json:"transactionId"`
	CustomerName  string          `json:"customerName,omitempty"`
	Date          string          `json:"date"`
	Price         decimal.Decimal `json:"price"`
	Extra         JSONBMap        `json:"-"`

	fields recordFields
}

// has reports whether the known field f should be treated as present. Records built in
// code count a field as present when set is true.
func (r *TransactionRecord) has(f recordFields, set bool) bool {
	if r.fields&fieldsDecoded == 0 {
		return set
	}
	return r.fields&f != 0
}

// DisplayName returns the name used by the customer search: customerName when the
// record carries one, otherwise name.
func (r *TransactionRecord) DisplayName() string {
	if r.has(fieldCustomerName, r.CustomerName != "") {
		return r.CustomerName
	}
	if v, ok := r.Extra[RecordFieldCustomerName]; ok && v != nil {
		return ""
	}
	return r.Extra.String(RecordFieldName)
}

// UnmarshalJSON decodes a feed object. Known fields with an unexpected JSON type are
// left at their zero value instead of failing the whole record.
func (r *TransactionRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = TransactionRecord{fields: fieldsDecoded}
	for key, raw := range fields {
		switch key {
		case RecordFieldTransactionID:
			if s, ok := rawString(raw); ok {
				r.TransactionID = s
				r.fields |= fieldTransactionID
				continue
			}
		case RecordFieldCustomerName:
			if s, ok := rawString(raw); ok {
				r.CustomerName = s
				r.fields |= fieldCustomerName
				continue
			}
		case RecordFieldDate:
			if s, ok := rawString(raw); ok {
				r.Date = s
				r.fields |= fieldDate
				continue
			}
		case RecordFieldPrice:
			var price decimal.Decimal
			if err := price.UnmarshalJSON(raw); err == nil {
				r.Price = price
				if isJSONNumber(raw) {
					r.fields |= fieldPrice
					continue
				}
			}
		}

		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		if r.Extra == nil {
			r.Extra = JSONBMap{}
		}
		r.Extra[key] = value
	}

	return nil
}

// Fields returns the record as a JSON object: Extra with the known fields laid over it.
// Price is written as a JSON number.
func (r TransactionRecord) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(r.Extra)+5)
	for k, v := range r.Extra {
		out[k] = v
	}
	if r.has(fieldTransactionID, true) {
		out[RecordFieldTransactionID] = r.TransactionID
	}
	if r.has(fieldDate, true) {
		out[RecordFieldDate] = r.Date
	}
	if r.has(fieldPrice, true) {
		out[RecordFieldPrice] = json.RawMessage(r.Price.String())
	}
	if r.has(fieldCustomerName, r.CustomerName != "") {
		out[RecordFieldCustomerName] = r.CustomerName
	}
	return out
}

// MarshalJSON writes the record back out in the shape it was received.
func (r TransactionRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// DecodeTransactionRecords decodes a feed payload. ok is false when the payload is not
// a JSON array. Array elements that are not objects are skipped.
func DecodeTransactionRecords(data []byte) (records []TransactionRecord, ok bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []TransactionRecord{}, false
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return []TransactionRecord{}, false
	}

	records = make([]TransactionRecord, 0, len(elements))
	for _, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 || element[0] != '{' {
			continue
		}
		var record TransactionRecord
		if err := json.Unmarshal(element, &record); err != nil {
			continue
		}
		records = append(records, record)
	}

	return records, true
}

// rawString decodes a JSON string. null is not a string.
func rawString(raw json.RawMessage) (string, bool) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'))
}
