// Package importer normalizes semi-structured spreadsheet rows into
// storage-ready records. Column labels vary across uploads (case,
// whitespace, naming), so each canonical field resolves through an ordered
// alias list. The package is pure: storage lookups and inserts stay with
// the caller, which feeds in the set of already-used phone numbers.
package importer

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EntityKind selects the alias and meta tables for one import target.
type EntityKind string

const (
	KindDealer    EntityKind = "dealers"
	KindSubDealer EntityKind = "subdealers"
	KindEmployee  EntityKind = "employees"
)

// Status classifies one processed row.
type Status string

const (
	StatusInserted Status = "inserted"
	StatusSkipped  Status = "skipped"
)

// Skip reasons reported per row.
const (
	ReasonMissingName    = "missing name"
	ReasonMissingPhone   = "missing phone"
	ReasonDuplicatePhone = "duplicate phone"
	ReasonError          = "error"
)

// RawRow is one decoded spreadsheet row: column label -> cell value.
// Values are strings or numbers depending on the upload decoder.
type RawRow map[string]any

// Record is the canonical storage-ready shape shared by the import targets.
// Date fields are nil when the source had no usable value; an empty string
// must never reach a date-typed column.
type Record struct {
	Name          string
	Address       string
	Area          string
	District      string
	Phone         string
	Email         string
	SalesPromoter string
	Dob           *string
	Anniversary   *string
	Birthday      *string
	Meta          string
}

// Result is the per-row outcome of a batch run.
type Result struct {
	Index  int     `json:"rowIndex"`
	Status Status  `json:"status"`
	Reason string  `json:"reason,omitempty"`
	Name   string  `json:"name,omitempty"`
	Phone  string  `json:"phone,omitempty"`
	Record *Record `json:"-"`
}

// Summary aggregates one sheet's batch run, one Result per input row in
// input order.
type Summary struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Details  []Result `json:"details"`
}

// PhoneSet accumulates phone numbers that are no longer available: those
// already stored plus those accepted earlier in the same batch.
type PhoneSet map[string]struct{}

// NewPhoneSet builds the accumulator from the phones already in storage.
func NewPhoneSet(existing []string) PhoneSet {
	s := make(PhoneSet, len(existing))
	for _, p := range existing {
		s.Add(p)
	}
	return s
}

func (s PhoneSet) Has(phone string) bool {
	_, ok := s[phone]
	return ok
}

func (s PhoneSet) Add(phone string) {
	s[phone] = struct{}{}
}

// aliasTable maps each canonical field to its accepted source labels, in
// priority order. Lookup is case-insensitive and whitespace-trimmed, so the
// entries here are spelled the way upload headers usually arrive.
var aliasTable = map[EntityKind]map[string][]string{
	KindDealer: {
		"name":           {"name"},
		"phone":          {"phoneNo", "phone"},
		"email":          {"email", "email id"},
		"address":        {"address"},
		"district":       {"region", "district"},
		"sales_promoter": {"associatedSalesmanName", "salesman", "sales_promoter"},
		"dob":            {"dateOfBirth", "dob", "birthday"},
		"anniversary":    {"anniversaryDate", "anniversary"},
	},
	KindSubDealer: {
		"name":     {"name"},
		"phone":    {"phoneNo", "phone"},
		"email":    {"email", "email id"},
		"area":     {"area", "zone"},
		"district": {"region", "district"},
		"birthday": {"dateOfBirth", "dob", "birthday"},
	},
	KindEmployee: {
		"name":     {"name"},
		"phone":    {"phone", "phoneNo"},
		"email":    {"email id", "email"},
		"area":     {"zone", "area"},
		"birthday": {"doj", "birthday", "dateOfBirth"},
	},
}

// metaField is one unmapped source column preserved in the meta blob.
type metaField struct {
	name    string
	aliases []string
	isDate  bool
}

// metaTable lists the source columns that have no dedicated target column
// but must survive the import inside the meta blob.
var metaTable = map[EntityKind][]metaField{
	KindDealer: {
		{name: "pinCode", aliases: []string{"pinCode"}},
		{name: "latitude", aliases: []string{"latitude"}},
		{name: "longitude", aliases: []string{"longitude"}},
		{name: "area", aliases: []string{"area"}},
		{name: "originalId", aliases: []string{"id"}},
	},
	KindSubDealer: {
		{name: "potential", aliases: []string{"potential"}},
		{name: "originalId", aliases: []string{"id"}},
	},
	KindEmployee: {
		{name: "designation", aliases: []string{"designation"}},
		{name: "doj", aliases: []string{"doj"}, isDate: true},
		{name: "originalId", aliases: []string{"employee id", "id"}},
	},
}

// rawValue resolves the first alias whose cell holds a non-empty value and
// returns it untouched, preserving the cell's type for date coercion.
func rawValue(row RawRow, aliases []string) any {
	normalized := make(map[string]any, len(row))
	for k, v := range row {
		normalized[normalizeLabel(k)] = v
	}
	for _, alias := range aliases {
		v, ok := normalized[normalizeLabel(alias)]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Value resolves aliases against row and coerces the winning cell to a
// trimmed string; absent cells yield "".
func Value(row RawRow, aliases ...string) string {
	return strings.TrimSpace(asString(rawValue(row, aliases)))
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

const dateLayout = "2006-01-02"

// unixEpochSerial is the spreadsheet day serial of 1970-01-01
// (the serial epoch is 1899-12-30).
const unixEpochSerial = 25569

var dateLayouts = []string{
	dateLayout,
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
}

// FormatDate coerces a cell value to YYYY-MM-DD where possible.
// Numeric cells (and purely numeric strings, which is how raw spreadsheet
// cells decode) are treated as day serials. Recognized date strings are
// reformatted; unrecognized strings pass through unchanged; anything else
// yields "".
func FormatDate(v any) string {
	switch d := v.(type) {
	case float64:
		return fromSerial(d)
	case int:
		return fromSerial(float64(d))
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return ""
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "-/:") {
			return fromSerial(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(dateLayout)
			}
		}
		return s
	default:
		return ""
	}
}

// fromSerial converts a spreadsheet day serial to a calendar date.
func fromSerial(serial float64) string {
	sec := int64((serial - unixEpochSerial) * 86400)
	return time.Unix(sec, 0).UTC().Format(dateLayout)
}

// DateOrNil converts a formatted date to its nullable column value.
func DateOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeRow maps one source row to a canonical record for kind, or
// rejects it with a reason. seen accumulates phones as rows are accepted,
// so within one batch the first of two rows sharing a phone is inserted and
// the second rejected.
func NormalizeRow(row RawRow, kind EntityKind, seen PhoneSet) Result {
	aliases := aliasTable[kind]

	name := Value(row, aliases["name"]...)
	if name == "" {
		return Result{Status: StatusSkipped, Reason: ReasonMissingName}
	}
	phone := Value(row, aliases["phone"]...)
	if phone == "" {
		return Result{Status: StatusSkipped, Reason: ReasonMissingPhone, Name: name}
	}
	if seen.Has(phone) {
		return Result{Status: StatusSkipped, Reason: ReasonDuplicatePhone, Name: name, Phone: phone}
	}

	rec := &Record{
		Name:  name,
		Phone: phone,
		Email: Value(row, aliases["email"]...),
	}
	switch kind {
	case KindDealer:
		rec.Address = Value(row, aliases["address"]...)
		rec.District = Value(row, aliases["district"]...)
		rec.SalesPromoter = Value(row, aliases["sales_promoter"]...)
		rec.Dob = DateOrNil(FormatDate(rawValue(row, aliases["dob"])))
		rec.Anniversary = DateOrNil(FormatDate(rawValue(row, aliases["anniversary"])))
	case KindSubDealer:
		rec.Area = Value(row, aliases["area"]...)
		rec.District = Value(row, aliases["district"]...)
		rec.Birthday = DateOrNil(FormatDate(rawValue(row, aliases["birthday"])))
	case KindEmployee:
		rec.Area = Value(row, aliases["area"]...)
		rec.Birthday = DateOrNil(FormatDate(rawValue(row, aliases["birthday"])))
	}
	rec.Meta = metaBlob(row, kind)

	seen.Add(phone)
	return Result{Status: StatusInserted, Name: name, Phone: phone, Record: rec}
}

// metaBlob serializes the unmapped source columns so they survive the
// import instead of being discarded.
func metaBlob(row RawRow, kind EntityKind) string {
	meta := make(map[string]string, len(metaTable[kind]))
	for _, f := range metaTable[kind] {
		if f.isDate {
			meta[f.name] = FormatDate(rawValue(row, f.aliases))
		} else {
			meta[f.name] = Value(row, f.aliases...)
		}
	}
	blob, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}
	return string(blob)
}

// NormalizeBatch runs rows through NormalizeRow in input order. A failure
// in one row is recovered and reported as skipped with reason "error"; it
// never aborts the remaining rows.
func NormalizeBatch(rows []RawRow, kind EntityKind, seen PhoneSet) Summary {
	summary := Summary{Details: make([]Result, 0, len(rows))}
	for i, row := range rows {
		res := normalizeSafely(row, kind, seen)
		res.Index = i
		if res.Status == StatusInserted {
			summary.Inserted++
		} else {
			summary.Skipped++
		}
		summary.Details = append(summary.Details, res)
	}
	return summary
}

func normalizeSafely(row RawRow, kind EntityKind, seen PhoneSet) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Status: StatusSkipped, Reason: ReasonError}
		}
	}()
	return NormalizeRow(row, kind, seen)
}
